package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/internal/logging"
	"github.com/orangehrm/oxd/internal/objstore"
	"github.com/orangehrm/oxd/pkg/ui"
	"github.com/orangehrm/oxd/pkg/vdom"
)

func testSuite(label string) Suite {
	return Suite{Name: "demo", Cases: []Case{
		{Name: "plain", Node: vdom.P(vdom.Class("x"), vdom.Text(label))},
		{Name: "nested", Node: vdom.Div(vdom.Span(vdom.Text("a")), vdom.Span(vdom.Text("b")))},
	}}
}

func TestRunnerWritesThenPasses(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	r := NewRunner(store, ModeCheck, logging.Discard())
	report, err := r.Run(ctx, testSuite("hello"))
	require.NoError(t, err)
	require.True(t, report.OK())
	assert.Equal(t, []string{"plain", "nested"}, report.Results[0].Written)

	data, err := os.ReadFile(filepath.Join(store.Dir, "demo.snap"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "exports[`nested`] = `\n<div>\n  <span>a</span>\n  <span>b</span>\n</div>\n`;")
	assert.Contains(t, string(data), "exports[`plain`] = `\n<p class=\"x\">hello</p>\n`;")

	report, err = r.Run(ctx, testSuite("hello"))
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, []string{"plain", "nested"}, report.Results[0].Passed)
	assert.Empty(t, report.Results[0].Written)
}

func TestRunnerReportsMismatch(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())
	r := NewRunner(store, ModeCheck, logging.Discard())

	_, err := r.Run(ctx, testSuite("hello"))
	require.NoError(t, err)

	report, err := r.Run(ctx, testSuite("goodbye"))
	require.NoError(t, err)
	require.False(t, report.OK())

	res := report.Results[0]
	require.Len(t, res.Failed, 1)
	m := res.Failed[0]
	assert.Equal(t, "plain", m.Name)
	assert.Equal(t, `<p class="x">hello</p>`, m.Expected)
	assert.Equal(t, `<p class="x">goodbye</p>`, m.Actual)
	assert.Contains(t, m.Diff, `- <p class="x">hello</p>`)
	assert.Contains(t, m.Diff, `+ <p class="x">goodbye</p>`)

	err = report.Err()
	assert.Equal(t, errors.CodeSnapshotMismatch, errors.CodeOf(err))

	// The stored baseline is untouched in check mode.
	f, err := store.Load(ctx, "demo")
	require.NoError(t, err)
	got, _ := f.Get("plain")
	assert.Equal(t, `<p class="x">hello</p>`, got)
}

func TestRunnerUpdateMode(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	_, err := NewRunner(store, ModeCheck, logging.Discard()).Run(ctx, testSuite("hello"))
	require.NoError(t, err)

	suite := testSuite("goodbye")
	suite.Cases = suite.Cases[:1]
	report, err := NewRunner(store, ModeUpdate, logging.Discard()).Run(ctx, suite)
	require.NoError(t, err)
	require.True(t, report.OK())
	assert.Equal(t, []string{"plain"}, report.Results[0].Updated)
	assert.Equal(t, []string{"nested"}, report.Results[0].Removed)

	f, err := store.Load(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, []string{"plain"}, f.Names())
	got, _ := f.Get("plain")
	assert.Equal(t, `<p class="x">goodbye</p>`, got)
}

func TestRunnerCIMode(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewFileStore(dir)

	report, err := NewRunner(store, ModeCI, logging.Discard()).Run(ctx, testSuite("hello"))
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, []string{"plain", "nested"}, report.Results[0].Missing)
	assert.Equal(t, errors.CodeSnapshotMissing, errors.CodeOf(report.Err()))

	_, err = os.Stat(filepath.Join(dir, "demo.snap"))
	assert.True(t, os.IsNotExist(err), "ci mode must not write baselines")
}

func TestRunnerObsoleteInCheckMode(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())
	r := NewRunner(store, ModeCheck, logging.Discard())

	_, err := r.Run(ctx, testSuite("hello"))
	require.NoError(t, err)

	suite := testSuite("hello")
	suite.Cases = suite.Cases[1:]
	report, err := r.Run(ctx, suite)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, []string{"plain"}, report.Results[0].Obsolete)
}

func TestRunnerDuplicateCase(t *testing.T) {
	suite := Suite{Name: "dup", Cases: []Case{
		{Name: "a", Node: vdom.P()},
		{Name: "a", Node: vdom.P()},
	}}
	_, err := NewRunner(NewFileStore(t.TempDir()), ModeCheck, logging.Discard()).Run(context.Background(), suite)
	assert.Error(t, err)
}

func TestS3Store(t *testing.T) {
	ctx := context.Background()
	mem := objstore.NewMemory()
	store, err := Open("s3://baselines/oxd", mem)
	require.NoError(t, err)
	assert.Equal(t, "s3://baselines/oxd/", store.(*S3Store).String())

	report, err := NewRunner(store, ModeCheck, logging.Discard()).Run(ctx, testSuite("hello"))
	require.NoError(t, err)
	require.True(t, report.OK())
	assert.Equal(t, 1, mem.Len())
	assert.Equal(t, "text/plain; charset=utf-8", mem.ContentTypeOf("baselines", "oxd/demo.snap"))

	f, err := store.Load(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, 2, f.Len())

	empty, err := store.Load(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestOpen(t *testing.T) {
	s, err := Open("testdata/snaps", nil)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	_, err = Open("s3://bucket/prefix", nil)
	assert.Error(t, err)

	_, err = Open("gs://bucket", nil)
	assert.Error(t, err)
}

func TestDefaultSuitesMatchBaselines(t *testing.T) {
	store := NewFileStore(filepath.Join("testdata", "__snapshots__"))
	report, err := NewRunner(store, ModeCI, logging.Discard()).Run(context.Background(), DefaultSuites()...)
	require.NoError(t, err)

	for _, res := range report.Results {
		assert.Empty(t, res.Missing, res.Suite)
		assert.Empty(t, res.Obsolete, res.Suite)
		for _, m := range res.Failed {
			t.Errorf("%s: %s\n%s", res.Suite, m.Name, m.Diff)
		}
	}
	passed, written, updated, failed := report.Totals()
	assert.Equal(t, 31, passed)
	assert.Equal(t, 0, written+updated+failed)
	require.NoError(t, report.Err())

	f, err := store.Load(context.Background(), "button")
	require.NoError(t, err)
	pinned := 0
	for _, typ := range ui.ButtonTypes() {
		got, ok := f.Get("Button " + string(typ))
		if !ok {
			continue
		}
		pinned++
		assert.Equal(t, `<button class="oxd-button oxd-button--`+string(typ)+`" type="button">Button</button>`, got)
	}
	assert.Equal(t, 12, pinned)
}

func TestDefaultSuites(t *testing.T) {
	suites := DefaultSuites()
	require.Len(t, suites, 3)
	assert.Len(t, suites[0].Cases, 17)
	assert.Len(t, suites[1].Cases, 8)
	assert.Len(t, suites[2].Cases, 6)

	ctx := context.Background()
	store := NewFileStore(t.TempDir())
	report, err := NewRunner(store, ModeCheck, logging.Discard()).Run(ctx, suites...)
	require.NoError(t, err)
	passed, written, updated, failed := report.Totals()
	assert.Equal(t, 0, passed)
	assert.Equal(t, 31, written)
	assert.Equal(t, 0, updated)
	assert.Equal(t, 0, failed)

	f, err := store.Load(ctx, "button")
	require.NoError(t, err)
	got, ok := f.Get("Button custom color")
	require.True(t, ok)
	assert.Equal(t, `<button class="oxd-button" style="background-color: palegreen;" type="button">Button</button>`, got)

	f, err = store.Load(ctx, "text")
	require.NoError(t, err)
	got, ok = f.Get("Text h1 with style")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(got, `<h1 class="oxd-text oxd-text--h1" style="background-color: brown;">`))

	// A second run over the same store is clean.
	report, err = NewRunner(store, ModeCI, logging.Discard()).Run(ctx, suites...)
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestParseMode(t *testing.T) {
	for s, want := range map[string]Mode{"": ModeCheck, "check": ModeCheck, "update": ModeUpdate, "ci": ModeCI} {
		got, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("force")
	assert.Error(t, err)
	assert.Equal(t, "update", ModeUpdate.String())
}

func TestRunnerPartialUpdateKeepsOtherEntries(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	f := NewFile()
	f.Set("other", "<p>kept</p>")
	f.Set("button", "<button>old</button>")
	require.NoError(t, store.Save(ctx, "mixed", f))

	r := NewRunner(store, ModeUpdate, logging.Discard())
	r.Partial = true
	report, err := r.Run(ctx, Suite{Name: "mixed", Cases: []Case{
		{Name: "button", Node: vdom.Button(vdom.Text("new"))},
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"button"}, report.Results[0].Updated)
	assert.Empty(t, report.Results[0].Removed)

	got, err := store.Load(ctx, "mixed")
	require.NoError(t, err)
	kept, ok := got.Get("other")
	require.True(t, ok)
	assert.Equal(t, "<p>kept</p>", kept)
}
