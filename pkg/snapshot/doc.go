// Package snapshot stores rendered component markup as regression
// baselines and compares fresh renders against them.
//
// Baselines are kept in .snap files, one per suite, using the familiar
// exports format:
//
//	// oxd snapshot v1
//
//	exports[`Button default 1`] = `
//	<button class="oxd-button" type="button">Button</button>
//	`;
//
// A Store loads and saves files; FileStore keeps them in a directory and
// S3Store in an S3 bucket. A Runner renders every Case of a Suite, compares
// the markup with the stored entry and, depending on its Mode, writes new
// baselines, rewrites changed ones or reports them as failures with a line
// diff.
package snapshot
