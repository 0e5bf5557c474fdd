package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/pkg/render"
	"github.com/orangehrm/oxd/pkg/vdom"
)

// Mode selects how a Runner treats missing and changed baselines.
type Mode int

const (
	// ModeCheck writes missing baselines and reports changed ones.
	ModeCheck Mode = iota

	// ModeUpdate writes missing baselines, rewrites changed ones and drops
	// entries no case produces.
	ModeUpdate

	// ModeCI never writes; missing baselines are failures.
	ModeCI
)

func (m Mode) String() string {
	switch m {
	case ModeCheck:
		return "check"
	case ModeUpdate:
		return "update"
	case ModeCI:
		return "ci"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "check", "update" or "ci" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "check":
		return ModeCheck, nil
	case "update":
		return ModeUpdate, nil
	case "ci":
		return ModeCI, nil
	}
	return ModeCheck, fmt.Errorf("unknown snapshot mode %q", s)
}

// Case is one rendered node to compare.
type Case struct {
	Name string
	Node *vdom.VNode
}

// Suite groups the cases stored in one file.
type Suite struct {
	Name  string
	Cases []Case
}

// Mismatch is a case whose markup differs from its baseline.
type Mismatch struct {
	Name     string
	Expected string
	Actual   string
	Diff     string
}

// Result is the outcome of running one suite.
type Result struct {
	Suite    string
	Passed   []string
	Written  []string
	Updated  []string
	Removed  []string
	Missing  []string
	Obsolete []string
	Failed   []Mismatch
}

// OK reports whether the suite has no failures.
func (r Result) OK() bool {
	return len(r.Failed) == 0 && len(r.Missing) == 0
}

// Report collects the results of a run.
type Report struct {
	Mode    Mode
	Results []Result
}

// OK reports whether every suite passed.
func (r Report) OK() bool {
	for _, res := range r.Results {
		if !res.OK() {
			return false
		}
	}
	return true
}

// Totals sums the per-suite counts.
func (r Report) Totals() (passed, written, updated, failed int) {
	for _, res := range r.Results {
		passed += len(res.Passed)
		written += len(res.Written)
		updated += len(res.Updated)
		failed += len(res.Failed) + len(res.Missing)
	}
	return
}

// Err returns nil when the report is OK and a coded error otherwise.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	var mismatched, missing []string
	for _, res := range r.Results {
		for _, m := range res.Failed {
			mismatched = append(mismatched, res.Suite+": "+m.Name)
		}
		for _, name := range res.Missing {
			missing = append(missing, res.Suite+": "+name)
		}
	}
	if len(mismatched) > 0 {
		return errors.New(errors.CodeSnapshotMismatch).
			WithDetailf("%d case(s) differ: %s", len(mismatched), strings.Join(mismatched, ", ")).
			WithSuggestion("Review the diffs, then run 'oxd snapshot --update' to accept them")
	}
	return errors.New(errors.CodeSnapshotMissing).
		WithDetailf("%d case(s) have no baseline: %s", len(missing), strings.Join(missing, ", ")).
		WithSuggestion("Run 'oxd snapshot' locally and commit the new baselines")
}

// Runner renders suites and compares them with a Store.
type Runner struct {
	Store    Store
	Mode     Mode
	Renderer *render.Renderer
	Logger   *slog.Logger

	// Partial leaves entries that no case produced in place, even in
	// ModeUpdate. Used when only some of a suite's cases run.
	Partial bool
}

// NewRunner returns a Runner using the pretty renderer.
func NewRunner(store Store, mode Mode, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		Store:    store,
		Mode:     mode,
		Renderer: render.NewRenderer(render.RendererConfig{Pretty: true}),
		Logger:   logger,
	}
}

// Run runs every suite. An error is returned only when the store fails;
// mismatches are reported in the Report.
func (r *Runner) Run(ctx context.Context, suites ...Suite) (Report, error) {
	report := Report{Mode: r.Mode}
	for _, s := range suites {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res, err := r.runSuite(ctx, s)
		if err != nil {
			return report, err
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func (r *Runner) runSuite(ctx context.Context, s Suite) (Result, error) {
	res := Result{Suite: s.Name}

	file, err := r.Store.Load(ctx, s.Name)
	if err != nil {
		return res, errors.New(errors.CodeSnapshotStore).
			WithDetailf("loading %s from %s", s.Name, r.Store).
			Wrap(err)
	}

	seen := make(map[string]bool, len(s.Cases))
	dirty := false
	for _, c := range s.Cases {
		if seen[c.Name] {
			return res, fmt.Errorf("snapshot: suite %s: duplicate case %q", s.Name, c.Name)
		}
		seen[c.Name] = true

		actual, err := r.Renderer.RenderToString(c.Node)
		if err != nil {
			return res, fmt.Errorf("snapshot: %s/%s: %w", s.Name, c.Name, err)
		}
		actual = strings.TrimSuffix(actual, "\n")

		expected, ok := file.Get(c.Name)
		switch {
		case !ok && r.Mode == ModeCI:
			res.Missing = append(res.Missing, c.Name)
		case !ok:
			file.Set(c.Name, actual)
			res.Written = append(res.Written, c.Name)
			dirty = true
		case expected == actual:
			res.Passed = append(res.Passed, c.Name)
		case r.Mode == ModeUpdate:
			file.Set(c.Name, actual)
			res.Updated = append(res.Updated, c.Name)
			dirty = true
		default:
			res.Failed = append(res.Failed, Mismatch{
				Name:     c.Name,
				Expected: expected,
				Actual:   actual,
				Diff:     Diff(expected, actual),
			})
		}
	}

	for _, name := range file.Names() {
		if seen[name] {
			continue
		}
		if r.Mode == ModeUpdate && !r.Partial {
			file.Delete(name)
			res.Removed = append(res.Removed, name)
			dirty = true
			continue
		}
		res.Obsolete = append(res.Obsolete, name)
	}

	if dirty {
		if err := r.Store.Save(ctx, s.Name, file); err != nil {
			return res, errors.New(errors.CodeSnapshotStore).
				WithDetailf("saving %s to %s", s.Name, r.Store).
				Wrap(err)
		}
	}

	r.Logger.Debug("snapshot suite",
		"suite", s.Name,
		"mode", r.Mode.String(),
		"passed", len(res.Passed),
		"written", len(res.Written),
		"updated", len(res.Updated),
		"failed", len(res.Failed),
		"missing", len(res.Missing),
	)
	return res, nil
}
