// Package lint provides a go/analysis based analyzer for detecting
// scope restore mistakes in code that uses parameterize.
//
// Scope enter/exit in parameterize is cooperative: Create and
// Parameterize return a restore function that the caller must defer
// right away, or the previous scope chain head is never reinstalled.
// The runtime does not police this, so the analyzer does.
package lint

import (
	"errors"
	"flag"
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/agrif/parameterize/lint/internal/directive/ignore"
	"github.com/agrif/parameterize/lint/internal/funcspec"
)

// modulePath is where the scope-opening functions live.
const modulePath = "github.com/agrif/parameterize"

// Flags for the analyzer.
var (
	restoreFuncs string

	// Checker enable/disable flags (all enabled by default).
	enableDiscard bool
	enableDefer   bool
)

func init() {
	Analyzer.Flags.StringVar(&restoreFuncs, "restore-funcs", "",
		"comma-separated list of additional functions returning scope restore funcs (e.g., pkg.Func or pkg.Type.Method)")
	Analyzer.Flags.BoolVar(&enableDiscard, "discard", true, "enable discard checker")
	Analyzer.Flags.BoolVar(&enableDefer, "defer", true, "enable defer checker")
}

// Analyzer is the main analyzer for parameterize scope hygiene.
var Analyzer = &analysis.Analyzer{
	Name:     "parameterize",
	Doc:      "checks that scope restore functions from parameterize are deferred and never discarded",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

// builtinSpecs covers the scope-opening API of this module.
func builtinSpecs() []funcspec.Spec {
	return []funcspec.Spec{
		{PkgPath: modulePath, FuncName: "Create"},
		{PkgPath: modulePath, TypeName: "Parameter", FuncName: "Parameterize"},
	}
}

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	specs := append(builtinSpecs(), funcspec.ParseList(restoreFuncs)...)

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Build ignore maps for each file (excluding skipped files)
	ignoreMaps := buildIgnoreMaps(pass, skipFiles)

	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)}, func(n ast.Node) {
		var body *ast.BlockStmt
		switch fn := n.(type) {
		case *ast.FuncDecl:
			body = fn.Body
		case *ast.FuncLit:
			body = fn.Body
		}
		if body == nil {
			return
		}

		filename := pass.Fset.Position(n.Pos()).Filename
		if skipFiles[filename] {
			return
		}

		checkBody(pass, body, specs, ignoreMaps[filename])
	})

	// Report unused ignore directives
	reportUnusedIgnores(pass, ignoreMaps)

	return nil, nil
}

// restoreVar is a restore function captured in a local variable.
type restoreVar struct {
	obj  types.Object
	call *ast.CallExpr
	name string
}

// checkBody examines one function body. Nested function literals are
// checked as bodies of their own: a restore function must be deferred
// in the same function that opened the scope.
func checkBody(pass *analysis.Pass, body *ast.BlockStmt, specs []funcspec.Spec, ignores ignore.Map) {
	var restores []restoreVar
	deferred := make(map[types.Object]bool)

	ast.Inspect(body, func(n ast.Node) bool {
		if _, ok := n.(*ast.FuncLit); ok {
			return false
		}

		switch stmt := n.(type) {
		case *ast.ExprStmt:
			if call, name, ok := restoreCall(pass, stmt.X, specs); ok {
				reportDiscard(pass, ignores, call, name)
			}

		case *ast.AssignStmt:
			if len(stmt.Rhs) == 1 {
				recordAssign(pass, ignores, stmt.Lhs, stmt.Rhs[0], specs, &restores)
				break
			}
			for i, rhs := range stmt.Rhs {
				if i < len(stmt.Lhs) {
					recordAssign(pass, ignores, stmt.Lhs[i:i+1], rhs, specs, &restores)
				}
			}

		case *ast.ValueSpec:
			if len(stmt.Values) == 1 {
				recordAssignIdents(pass, ignores, stmt.Names, stmt.Values[0], specs, &restores)
				break
			}
			for i, value := range stmt.Values {
				if i < len(stmt.Names) {
					recordAssignIdents(pass, ignores, stmt.Names[i:i+1], value, specs, &restores)
				}
			}

		case *ast.DeferStmt:
			// Deferring Create or Parameterize directly opens the
			// scope at function exit, which is never intended.
			if call, name, ok := restoreCall(pass, stmt.Call, specs); ok {
				reportDeferredOpen(pass, ignores, call, name)
				break
			}
			if id, ok := ast.Unparen(stmt.Call.Fun).(*ast.Ident); ok {
				if obj := pass.TypesInfo.Uses[id]; obj != nil {
					deferred[obj] = true
				}
			}
		}

		return true
	})

	if !enableDefer {
		return
	}
	for _, rv := range restores {
		if deferred[rv.obj] {
			continue
		}
		line := pass.Fset.Position(rv.call.Pos()).Line
		if ignores.ShouldIgnore(line, ignore.Defer) {
			continue
		}
		pass.Reportf(rv.call.Pos(), "restore function returned by %s is never deferred", rv.name)
	}
}

// restoreCall reports whether expr is a call to a restore-returning
// function, along with a display name for diagnostics.
func restoreCall(pass *analysis.Pass, expr ast.Expr, specs []funcspec.Spec) (*ast.CallExpr, string, bool) {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok {
		return nil, "", false
	}

	fn := funcspec.Callee(pass, call)
	if fn == nil {
		return nil, "", false
	}

	for _, s := range specs {
		if s.Matches(fn) {
			return call, s.FullName(), true
		}
	}

	return nil, "", false
}

// recordAssign records a restore function captured by an assignment,
// or reports it when no variable captures it.
func recordAssign(pass *analysis.Pass, ignores ignore.Map, lhs []ast.Expr, rhs ast.Expr, specs []funcspec.Spec, restores *[]restoreVar) {
	call, name, ok := restoreCall(pass, rhs, specs)
	if !ok {
		return
	}

	for _, l := range lhs {
		id, ok := ast.Unparen(l).(*ast.Ident)
		if !ok || id.Name == "_" {
			continue
		}
		obj := pass.TypesInfo.ObjectOf(id)
		if obj != nil && isRestoreFunc(obj.Type()) {
			*restores = append(*restores, restoreVar{obj: obj, call: call, name: name})
			return
		}
	}

	// Nothing captured the restore function.
	reportDiscard(pass, ignores, call, name)
}

// recordAssignIdents is recordAssign for var declarations.
func recordAssignIdents(pass *analysis.Pass, ignores ignore.Map, names []*ast.Ident, value ast.Expr, specs []funcspec.Spec, restores *[]restoreVar) {
	lhs := make([]ast.Expr, len(names))
	for i, name := range names {
		lhs[i] = name
	}
	recordAssign(pass, ignores, lhs, value, specs, restores)
}

// isRestoreFunc reports whether t is a niladic function type, the
// shape of every restore function.
func isRestoreFunc(t types.Type) bool {
	sig, ok := t.Underlying().(*types.Signature)
	return ok && sig.Params().Len() == 0 && sig.Results().Len() == 0
}

func reportDiscard(pass *analysis.Pass, ignores ignore.Map, call *ast.CallExpr, name string) {
	if !enableDiscard {
		return
	}
	line := pass.Fset.Position(call.Pos()).Line
	if ignores.ShouldIgnore(line, ignore.Discard) {
		return
	}
	pass.Reportf(call.Pos(), "restore function returned by %s is discarded", name)
}

func reportDeferredOpen(pass *analysis.Pass, ignores ignore.Map, call *ast.CallExpr, name string) {
	if !enableDefer {
		return
	}
	line := pass.Fset.Position(call.Pos()).Line
	if ignores.ShouldIgnore(line, ignore.Defer) {
		return
	}
	pass.Reportf(call.Pos(), "%s itself is deferred; call it now and defer the returned restore function", name)
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// enabledCheckers creates a map of which checkers are enabled.
func enabledCheckers() ignore.EnabledCheckers {
	enabled := make(ignore.EnabledCheckers)

	if enableDiscard {
		enabled[ignore.Discard] = true
	}
	if enableDefer {
		enabled[ignore.Defer] = true
	}

	return enabled
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map) {
	enabled := enabledCheckers()

	for _, ignoreMap := range ignoreMaps {
		for _, unused := range ignoreMap.GetUnusedIgnores(enabled) {
			if len(unused.Checkers) == 0 {
				pass.Reportf(unused.Pos, "unused parameterize:ignore directive")
			} else {
				names := make([]string, len(unused.Checkers))
				for i, c := range unused.Checkers {
					names[i] = string(c)
				}
				pass.Reportf(unused.Pos, "unused parameterize:ignore directive for checker(s): %s", strings.Join(names, ", "))
			}
		}
	}
}
