// Package funcspec parses and matches function specifications.
//
// # Specification Format
//
// A specification names a function or method by import path:
//
//	pkg/path.FuncName         # package-level function
//	pkg/path.TypeName.Method  # method on a type
//
// Examples:
//
//	github.com/agrif/parameterize.Create
//	github.com/agrif/parameterize.Parameter.Parameterize
//	github.com/example/tracing.Span.End
//
// # Matching
//
// [Spec.Matches] compares a types.Func against the specification,
// unwrapping pointer receivers and generic instantiations, so a method
// on *Parameter[int] matches "….Parameter.Method".
//
// # Extracting the Callee
//
// [Callee] resolves the *types.Func behind a call expression, whether
// the call is through a package qualifier, a method selection, or a
// plain identifier. It returns nil for calls that cannot be resolved
// statically (function values, interface dispatch on unknown types).
package funcspec
