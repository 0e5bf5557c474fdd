package docs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/pkg/render"
	"github.com/orangehrm/oxd/pkg/story"
	"github.com/orangehrm/oxd/pkg/ui"
)

// maxBody limits resolve request bodies.
const maxBody = 64 << 10

var pageRenderer = render.NewRenderer(render.RendererConfig{})

func (s *Server) site() site {
	return site{title: s.opts.Title, groups: s.Book().Groups(), live: s.opts.Live}
}

// previews renders every story with its own args.
func (s *Server) previews(ctx context.Context, book *story.Book) map[string]Rendered {
	out := make(map[string]Rendered, book.Len())
	for _, st := range book.Stories() {
		res, err := s.RenderStory(ctx, st, nil)
		if err != nil {
			s.logger.Warn("story preview failed", "story", st.ID, "error", err)
			continue
		}
		out[st.ID] = res
	}
	return out
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	st := s.site()
	s.writePage(w, http.StatusOK, st.indexPage(s.previews(r.Context(), s.Book())))
}

func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	st, ok := s.lookupStory(w, r)
	if !ok {
		return
	}
	overrides := overridesFromQuery(st, r.URL.Query())
	res, err := s.RenderStory(r.Context(), st, overrides)
	status := http.StatusOK
	if err != nil {
		status = http.StatusBadRequest
	}
	s.writePage(w, status, s.site().storyPage(st, st.Args.Merge(overrides), res, err))
}

func (s *Server) handleIframe(w http.ResponseWriter, r *http.Request) {
	st, ok := s.lookupStory(w, r)
	if !ok {
		return
	}
	res, err := s.RenderStory(r.Context(), st, overridesFromQuery(st, r.URL.Query()))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writePage(w, http.StatusOK, s.site().iframePage(st, res))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok\n")
}

func (s *Server) componentsJSON() []ui.Definition {
	return ui.Catalog()
}

func (s *Server) handleComponents(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.componentsJSON())
}

// storyView is a story as listed by the API, with its controls resolved.
type storyView struct {
	story.Story
	Controls []ui.Control `json:"controls"`
	Href     string       `json:"href"`
}

func viewOf(st story.Story) storyView {
	return storyView{Story: st, Controls: st.EffectiveControls(), Href: storyHref(st.ID)}
}

func (s *Server) handleStories(w http.ResponseWriter, _ *http.Request) {
	stories := s.Book().Stories()
	out := make([]storyView, len(stories))
	for i, st := range stories {
		out[i] = viewOf(st)
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStoryJSON(w http.ResponseWriter, r *http.Request) {
	st, err := s.Book().Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	res, err := s.RenderStory(r.Context(), st, nil)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.writeJSON(w, http.StatusOK, struct {
		storyView
		Result Rendered `json:"result"`
	}{viewOf(st), res})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "component")
	if _, err := ui.Lookup(name); err != nil {
		s.writeError(w, http.StatusNotFound, errors.New(errors.CodeUnknownComponent).WithDetailf("%q is not one of %v", name, ui.ComponentNames()))
		return
	}

	var args ui.Args
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New(errors.CodeInvalidArg).Wrap(err))
		return
	}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &args); err != nil {
			s.writeError(w, http.StatusBadRequest, errors.New(errors.CodeInvalidArg).WithDetail("request body must be a JSON object of args").Wrap(err))
			return
		}
	}

	res, err := s.RenderComponent(r.Context(), name, args)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) lookupStory(w http.ResponseWriter, r *http.Request) (story.Story, bool) {
	st, err := s.Book().Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return story.Story{}, false
	}
	return st, true
}

// overridesFromQuery turns query values into story args. When the
// controls form was submitted, absent checkboxes count as false.
func overridesFromQuery(st story.Story, q url.Values) ui.Args {
	args := ui.ArgsFromQuery(q)
	delete(args, formMarker)
	if q.Has(formMarker) {
		for _, c := range st.EffectiveControls() {
			if c.Kind == ui.ControlBoolean && !q.Has(c.Name) {
				args[c.Name] = false
			}
		}
	}
	return args
}

func (s *Server) writePage(w http.ResponseWriter, status int, page render.PageData) {
	var buf bytes.Buffer
	if err := pageRenderer.RenderPage(&buf, page); err != nil {
		s.logger.Error("page render failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("json encode failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
	w.Write([]byte("\n"))
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, struct {
		Error *errors.OxdError `json:"error"`
	}{errors.FromError(err, errors.CodeServe)})
}
