package story

import (
	"slices"
	"sync"
	"unicode"

	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/pkg/ui"
)

// Group is the stories sharing a title, in insertion order.
type Group struct {
	Title     string   `json:"title"`
	Component string   `json:"component"`
	Stories   []*Story `json:"stories"`
}

// Book is an ordered, concurrency-safe set of stories keyed by id.
type Book struct {
	mu      sync.RWMutex
	stories []*Story
	byID    map[string]*Story
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{byID: make(map[string]*Story)}
}

// Add inserts s, deriving its id when empty. The id must be a slug, the
// story's component must exist and its args must build.
func (b *Book) Add(s Story) error {
	if s.ID == "" {
		s.ID = MakeID(s.Title, s.Name)
	}
	if !validID(s.ID) {
		return errors.New(errors.CodeStoryArgs).
			WithDetailf("story id %q is not a slug", s.ID).
			WithSuggestion("Use lowercase letters, digits and dashes, or drop the id to derive one from title and name")
	}
	if _, err := ui.Lookup(s.Component); err != nil {
		return errors.New(errors.CodeUnknownComponent).
			WithDetailf("story %s uses component %q", s.ID, s.Component).
			Wrap(err)
	}
	if _, err := s.Build(nil); err != nil {
		return errors.New(errors.CodeStoryArgs).
			WithDetailf("story %s", s.ID).
			Wrap(err)
	}
	if s.Args == nil {
		s.Args = ui.Args{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if prev, ok := b.byID[s.ID]; ok {
		e := errors.New(errors.CodeStoryDuplicate).WithDetailf("id %q is already used", s.ID)
		if prev.Source != "" {
			e = e.WithSuggestion("Rename the story or remove the copy in " + prev.Source)
		}
		return e
	}
	stored := s
	b.stories = append(b.stories, &stored)
	b.byID[s.ID] = &stored
	return nil
}

// validID reports whether id is usable as a URL segment and a file name.
func validID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		switch {
		case r == '-', unicode.IsDigit(r):
		case unicode.IsLetter(r) && !unicode.IsUpper(r):
		default:
			return false
		}
	}
	return true
}

// Merge adds every story of other. It stops at the first error.
func (b *Book) Merge(other *Book) error {
	for _, s := range other.Stories() {
		if err := b.Add(s); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of stories.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.stories)
}

// Stories returns copies of every story in insertion order.
func (b *Book) Stories() []Story {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Story, len(b.stories))
	for i, s := range b.stories {
		out[i] = *s
	}
	return out
}

// Lookup returns the story with the given id.
func (b *Book) Lookup(id string) (Story, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.byID[id]
	if !ok {
		return Story{}, false
	}
	return *s, true
}

// Get is Lookup returning a coded error for unknown ids.
func (b *Book) Get(id string) (Story, error) {
	s, ok := b.Lookup(id)
	if !ok {
		return Story{}, errors.New(errors.CodeStoryNotFound).WithDetailf("no story with id %q", id)
	}
	return s, nil
}

// Groups returns the stories grouped by title, in order of first use.
func (b *Book) Groups() []Group {
	var groups []Group
	for _, s := range b.Stories() {
		i := slices.IndexFunc(groups, func(g Group) bool { return g.Title == s.Title })
		if i < 0 {
			groups = append(groups, Group{Title: s.Title, Component: s.Component})
			i = len(groups) - 1
		}
		st := s
		groups[i].Stories = append(groups[i].Stories, &st)
	}
	return groups
}

// ForComponent returns the stories of one component.
func (b *Book) ForComponent(name string) []Story {
	var out []Story
	for _, s := range b.Stories() {
		if s.Component == name {
			out = append(out, s)
		}
	}
	return out
}
