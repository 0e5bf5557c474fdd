package docs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/internal/objstore"
	"github.com/orangehrm/oxd/pkg/render"
)

// Export writes a static copy of the site to dir and returns the files
// written, relative to dir. Pages are laid out so that the server's URLs
// resolve on a static host: /stories/{id} maps to stories/{id}/index.html.
// Static story pages list their args instead of a controls form.
func (s *Server) Export(ctx context.Context, dir string) ([]string, error) {
	book := s.Book()
	st := s.site()
	st.static = true
	st.live = false

	var written []string
	write := func(rel string, data []byte) error {
		path, err := exportPath(dir, rel)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
		written = append(written, rel)
		return nil
	}
	page := func(rel string, p render.PageData) error {
		var buf bytes.Buffer
		if err := pageRenderer.RenderPage(&buf, p); err != nil {
			return err
		}
		return write(rel, buf.Bytes())
	}
	exportErr := func(err error) error {
		return errors.New(errors.CodeExport).WithDetailf("exporting to %s", dir).Wrap(err)
	}

	previews := s.previews(ctx, book)
	if err := page("index.html", st.indexPage(previews)); err != nil {
		return written, exportErr(err)
	}

	for _, story := range book.Stories() {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		res, err := s.RenderStory(ctx, story, nil)
		if err != nil {
			return written, exportErr(err)
		}
		if err := page("stories/"+story.ID+"/index.html", st.storyPage(story, story.Args, res, nil)); err != nil {
			return written, exportErr(err)
		}
		if err := page("iframe/"+story.ID+"/index.html", st.iframePage(story, res)); err != nil {
			return written, exportErr(err)
		}
	}

	stories := book.Stories()
	views := make([]storyView, len(stories))
	for i, story := range stories {
		views[i] = viewOf(story)
	}
	for rel, v := range map[string]any{
		"api/components.json": s.componentsJSON(),
		"api/stories.json":    views,
	} {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return written, exportErr(err)
		}
		if err := write(rel, append(data, '\n')); err != nil {
			return written, exportErr(err)
		}
	}

	s.logger.Info("docs exported", "dir", dir, "files", len(written))
	return written, nil
}

// exportPath joins rel onto dir and fails when the result leaves dir.
func exportPath(dir, rel string) (string, error) {
	path := filepath.Join(dir, filepath.FromSlash(rel))
	back, err := filepath.Rel(dir, path)
	if err != nil || back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) || filepath.IsAbs(back) {
		return "", fmt.Errorf("%s resolves outside %s", rel, dir)
	}
	return path, nil
}

// Publish uploads an exported directory to bucket.
func (s *Server) Publish(ctx context.Context, bucket *objstore.Bucket, dir string) ([]string, error) {
	keys, err := bucket.UploadDir(ctx, dir)
	if err != nil {
		return keys, errors.New(errors.CodePublish).
			WithDetailf("uploading %s to s3://%s/%s", dir, bucket.Name(), bucket.Prefix()).
			Wrap(err)
	}
	s.logger.Info("docs published", "bucket", bucket.Name(), "prefix", bucket.Prefix(), "objects", len(keys))
	return keys, nil
}
