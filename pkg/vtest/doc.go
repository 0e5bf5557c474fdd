// Package vtest provides testing helpers for oxd components.
//
// The helpers render a node once and assert on the resulting HTML, the
// root element's class list or its attributes, failing the test with the
// rendered output attached.
//
// # Render Assertions
//
//	b, _ := ui.NewButton(ui.ButtonProps{Label: "Save", Type: ui.TypeMain})
//	vtest.ExpectClasses(t, b.Render(), "oxd-button", "oxd-button--main")
//	vtest.ExpectAttribute(t, b.Render(), "type", "button")
//	vtest.ExpectContains(t, b.Render(), "Save")
//
// # Snapshots
//
// MatchSnapshot compares a node's pretty-printed markup with a baseline in
// testdata/__snapshots__/<TestName>.snap, writing the baseline on first
// run:
//
//	vtest.MatchSnapshot(t, "main button", b.Render())
//
// Set OXD_UPDATE_SNAPSHOTS=1 to rewrite changed baselines. When CI is set,
// missing baselines fail instead of being written.
package vtest
