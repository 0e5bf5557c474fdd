// Package story describes documented component examples.
//
// A Story names one component with a fixed set of args, grouped under a
// title the way a component explorer shows them. Stories can narrow a
// control's options, so a "feedback" story only offers feedback types.
//
// Default returns the built-in book. Additional stories are loaded from
// YAML files:
//
//	title: Example/Button
//	component: button
//	stories:
//	  - name: Danger
//	    args:
//	      type: danger
//	      label: Delete
//
// IDs are derived from the title and name ("example-button--danger")
// unless set explicitly.
package story
