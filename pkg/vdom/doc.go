// Package vdom provides the virtual node tree that oxd components render to.
//
// A VNode is an in-memory description of markup: elements with props and
// children, text, fragments, nested components and raw HTML. Components
// never write HTML directly; they return a VNode tree that the render
// package serializes, which keeps component output easy to inspect in tests.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Arguments may be attributes (Attr, []Attr), children (*VNode, []*VNode,
// Component) or strings, which become text nodes. nil arguments are skipped,
// so conditional attributes compose without branching.
package vdom
