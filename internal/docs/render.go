package docs

import (
	"context"
	stderrors "errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/pkg/render"
	"github.com/orangehrm/oxd/pkg/story"
	"github.com/orangehrm/oxd/pkg/style"
	"github.com/orangehrm/oxd/pkg/ui"
	"github.com/orangehrm/oxd/pkg/vdom"
)

// Rendered is a resolved and rendered component.
type Rendered struct {
	Story     string       `json:"story,omitempty"`
	Component string       `json:"component"`
	Tag       string       `json:"tag"`
	Classes   ui.ClassList `json:"classes"`
	Style     style.Map    `json:"style"`
	HTML      string       `json:"html"`

	built ui.Built
}

// Node returns the component's virtual DOM, or nil for a zero Rendered.
func (r Rendered) Node() *vdom.VNode {
	if r.built.Component == nil {
		return nil
	}
	return r.built.Component.Render()
}

// RenderStory builds st with overrides applied over its args.
func (s *Server) RenderStory(ctx context.Context, st story.Story, overrides ui.Args) (Rendered, error) {
	return s.render(ctx, st.Component, st.ID, func() (ui.Built, error) {
		return st.Build(overrides)
	})
}

// RenderComponent builds a catalog component from args.
func (s *Server) RenderComponent(ctx context.Context, name string, args ui.Args) (Rendered, error) {
	return s.render(ctx, name, "", func() (ui.Built, error) {
		def, err := ui.Lookup(name)
		if err != nil {
			return ui.Built{}, errors.New(errors.CodeUnknownComponent).
				WithDetailf("%q is not one of %v", name, ui.ComponentNames()).
				Wrap(err)
		}
		return def.Build(args)
	})
}

func (s *Server) render(ctx context.Context, component, storyID string, build func() (ui.Built, error)) (Rendered, error) {
	attrs := []attribute.KeyValue{attribute.String("oxd.component", component)}
	if storyID != "" {
		attrs = append(attrs, attribute.String("oxd.story", storyID))
	}
	_, span := s.tracer.Start(ctx, "oxd.render", trace.WithAttributes(attrs...))
	defer span.End()

	start := time.Now()
	built, err := build()
	if err != nil {
		err = codedPropError(err)
		s.metrics.observeRender(component, time.Since(start), err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Rendered{}, err
	}
	html := render.RenderString(built.Component.Render())
	s.metrics.observeRender(component, time.Since(start), nil)

	res := built.Resolution
	span.SetAttributes(
		attribute.String("oxd.tag", res.Tag),
		attribute.StringSlice("oxd.classes", res.Classes),
	)
	span.SetStatus(codes.Ok, "")

	return Rendered{
		Story:     storyID,
		Component: component,
		Tag:       res.Tag,
		Classes:   res.Classes,
		Style:     res.Style,
		HTML:      html,
		built:     built,
	}, nil
}

// codedPropError gives construction errors a registry code, keeping the
// original error in the chain.
func codedPropError(err error) error {
	if errors.CodeOf(err) != "" {
		return err
	}
	switch {
	case stderrors.Is(err, ui.ErrMissingContent):
		return errors.New(errors.CodeMissingContent).WithDetail(err.Error()).Wrap(err)
	case stderrors.Is(err, ui.ErrInvalidProp):
		return errors.New(errors.CodeInvalidProp).WithDetail(err.Error()).Wrap(err)
	default:
		return errors.New(errors.CodeInvalidArg).WithDetail(err.Error()).Wrap(err)
	}
}
