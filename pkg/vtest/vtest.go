package vtest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orangehrm/oxd/internal/logging"
	"github.com/orangehrm/oxd/pkg/render"
	"github.com/orangehrm/oxd/pkg/snapshot"
	"github.com/orangehrm/oxd/pkg/vdom"
)

// RenderToString renders a node to HTML for test assertions.
//
// Example:
//
//	html := vtest.RenderToString(b.Render())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	return render.RenderString(node)
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectText asserts that the text below node, markup stripped, is exactly
// text.
func ExpectText(t testing.TB, node *vdom.VNode, text string) {
	t.Helper()
	if got := node.TextContent(); got != text {
		t.Errorf("expected text %q, got %q", text, got)
	}
}

// ExpectElement asserts that the root element has the given tag.
//
// Example:
//
//	vtest.ExpectElement(t, txt.Render(), "h1")
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	root := rootElement(node)
	if root == nil || root.Tag != tag {
		t.Errorf("expected root <%s> element, got:\n%s", tag, truncate(RenderToString(node), 500))
	}
}

// ExpectClasses asserts that the root element's class attribute is exactly
// classes, in order.
func ExpectClasses(t testing.TB, node *vdom.VNode, classes ...string) {
	t.Helper()
	root := rootElement(node)
	var got string
	if root != nil {
		got, _ = root.Props["class"].(string)
	}
	if want := strings.Join(classes, " "); got != want {
		t.Errorf("class = %q, want %q", got, want)
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, b.Render(), "style", "background-color: palegreen;")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + render.EscapeHTML(value) + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// MatchSnapshot compares node with the baseline stored under name in
// testdata/__snapshots__/<TestName>.snap.
func MatchSnapshot(t testing.TB, name string, node *vdom.VNode) {
	t.Helper()
	dir := filepath.Join("testdata", "__snapshots__")
	suite := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	runner := snapshot.NewRunner(snapshot.NewFileStore(dir), snapshotMode(), logging.Discard())
	runner.Partial = true
	report, err := runner.Run(context.Background(), snapshot.Suite{
		Name:  suite,
		Cases: []snapshot.Case{{Name: name, Node: node}},
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", name, err)
	}
	res := report.Results[0]
	for _, m := range res.Failed {
		t.Errorf("snapshot %q does not match:\n%s", m.Name, m.Diff)
	}
	for _, missing := range res.Missing {
		t.Errorf("snapshot %q has no baseline in %s", missing, filepath.Join(dir, suite+snapshot.Ext))
	}
}

func snapshotMode() snapshot.Mode {
	switch {
	case os.Getenv("OXD_UPDATE_SNAPSHOTS") != "":
		return snapshot.ModeUpdate
	case os.Getenv("CI") != "":
		return snapshot.ModeCI
	default:
		return snapshot.ModeCheck
	}
}

// rootElement unwraps components and fragments down to the first element.
func rootElement(node *vdom.VNode) *vdom.VNode {
	for node != nil {
		switch node.Kind {
		case vdom.KindElement:
			return node
		case vdom.KindComponent:
			if node.Comp == nil {
				return nil
			}
			node = node.Comp.Render()
		case vdom.KindFragment:
			if len(node.Children) == 0 {
				return nil
			}
			node = node.Children[0]
		default:
			return nil
		}
	}
	return nil
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
