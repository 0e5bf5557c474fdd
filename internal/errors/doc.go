// Package errors provides coded, actionable errors for the oxd tooling.
//
// Every error carries a code (e.g. "E130") that maps to a registered
// template with a short message, a longer explanation and a documentation
// URL. Callers add a suggestion, a source location or a wrapped cause with
// the builder methods.
//
// # Error Categories
//
//   - props: component prop values rejected at construction
//   - config: oxd.json loading and validation
//   - story: story file parsing
//   - snapshot: baseline storage and comparison
//   - docs: the documentation server, export and publish
//   - cli: command-line usage
//
// # Usage
//
//	err := errors.New("E131").
//	    WithDetail("button: 2 of 17 cases differ").
//	    WithSuggestion("Run 'oxd snapshot --update' to accept the new markup")
//
//	fmt.Fprint(os.Stderr, err.Format())
package errors
