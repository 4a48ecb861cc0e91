// Package ignore provides //parameterize:ignore directive parsing.
//
// # Overview
//
// The ignore directive suppresses analyzer findings for a specific
// line, for all checkers or for named ones.
//
// # Directive Placement
//
// The directive can appear on the line before or on the same line:
//
//	//parameterize:ignore
//	parameterize.Create(nil) // finding suppressed
//
//	parameterize.Create(nil) //parameterize:ignore - also works
//
// # Checker-Specific Ignores
//
// Name checkers to suppress only those:
//
//	//parameterize:ignore discard
//	//parameterize:ignore discard,defer
//
// Valid names are "discard" (a restore function is dropped on the
// floor) and "defer" (a restore function is captured but never
// deferred, or the scope-opening call itself is deferred).
//
// # Unused Ignore Detection
//
// Directives that suppress nothing are themselves reported, so stale
// ignores do not accumulate:
//
//	//parameterize:ignore  // reported: unused directive
//	restore := parameterize.Create(nil)
//	defer restore()
package ignore
