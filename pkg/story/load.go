package story

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/pkg/ui"
)

// File is the YAML layout of a story file. Title, component, args and
// controls set at the top level apply to every story that does not set
// its own.
type File struct {
	Title     string       `yaml:"title"`
	Component string       `yaml:"component"`
	Args      ui.Args      `yaml:"args,omitempty"`
	Controls  []ui.Control `yaml:"controls,omitempty"`
	Stories   []Story      `yaml:"stories"`
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// Parse decodes a story file. source names the file in errors and may be
// empty.
func Parse(data []byte, source string) ([]Story, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, parseError(source, 0, "file is empty")
		}
		line := 0
		if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
			line, _ = strconv.Atoi(m[1])
		}
		return nil, parseError(source, line, "").Wrap(err)
	}
	if len(f.Stories) == 0 {
		return nil, parseError(source, 0, "no stories defined")
	}

	out := make([]Story, 0, len(f.Stories))
	for i, s := range f.Stories {
		if strings.TrimSpace(s.Name) == "" {
			return nil, parseError(source, 0, "story "+strconv.Itoa(i+1)+" has no name")
		}
		if s.Title == "" {
			s.Title = f.Title
		}
		if s.Component == "" {
			s.Component = f.Component
		}
		if s.Title == "" {
			s.Title = "Stories/" + s.Component
		}
		if s.Component == "" {
			return nil, parseError(source, 0, "story "+strconv.Quote(s.Name)+" has no component")
		}
		s.Args = f.Args.Merge(s.Args)
		if s.Controls == nil {
			s.Controls = f.Controls
		}
		s.Source = source
		out = append(out, s)
	}
	return out, nil
}

func parseError(source string, line int, detail string) *errors.OxdError {
	e := errors.New(errors.CodeStoryParse)
	switch {
	case source != "" && line > 0:
		e = e.WithLocation(source, line, 0)
	case source != "" && detail != "":
		detail = source + ": " + detail
	}
	if detail != "" {
		e = e.WithDetail(detail)
	}
	return e
}

// LoadFile parses the story file at path.
func LoadFile(path string) ([]Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeStoryParse).WithDetailf("reading %s", path).Wrap(err)
	}
	return Parse(data, path)
}

// LoadDir parses every *.yaml and *.yml file directly inside dir, in name
// order.
func LoadDir(dir string) ([]Story, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.New(errors.CodeStoryParse).WithDetailf("reading directory %s", dir).Wrap(err)
	}
	var names []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !e.IsDir() && (ext == ".yaml" || ext == ".yml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var out []Story
	for _, name := range names {
		stories, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, stories...)
	}
	return out, nil
}

// Load returns the default book extended with the stories found in dirs.
func Load(dirs ...string) (*Book, error) {
	b := Default()
	for _, dir := range dirs {
		stories, err := LoadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, s := range stories {
			if err := b.Add(s); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Marshal encodes stories sharing a title as a story file.
func Marshal(g Group) ([]byte, error) {
	f := File{Title: g.Title, Component: g.Component}
	for _, s := range g.Stories {
		st := *s
		if st.ID == MakeID(st.Title, st.Name) {
			st.ID = ""
		}
		st.Title, st.Component = "", ""
		f.Stories = append(f.Stories, st)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
