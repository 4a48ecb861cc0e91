// Package funcspec parses and matches function specifications.
package funcspec

import (
	"go/ast"
	"go/types"
	"strings"
	"unicode"

	"golang.org/x/tools/go/analysis"
)

// Spec holds the parsed components of a function specification.
// Format: "pkg/path.Func" or "pkg/path.Type.Method".
type Spec struct {
	PkgPath  string
	TypeName string // empty for package-level functions
	FuncName string
}

// Parse parses one specification string into components.
func Parse(s string) Spec {
	spec := Spec{}

	lastDot := strings.LastIndex(s, ".")
	if lastDot == -1 {
		spec.FuncName = s
		return spec
	}

	spec.FuncName = s[lastDot+1:]
	prefix := s[:lastDot]

	// A second dot may separate a type name from the package path.
	// Type names start with an uppercase letter.
	secondLastDot := strings.LastIndex(prefix, ".")
	if secondLastDot != -1 {
		possibleType := prefix[secondLastDot+1:]
		if len(possibleType) > 0 && unicode.IsUpper(rune(possibleType[0])) {
			spec.TypeName = possibleType
			spec.PkgPath = prefix[:secondLastDot]
			return spec
		}
	}

	spec.PkgPath = prefix
	return spec
}

// ParseList parses a comma-separated list of specifications, skipping
// empty entries.
func ParseList(s string) []Spec {
	var specs []Spec
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		specs = append(specs, Parse(part))
	}
	return specs
}

// FullName returns a short display form: the last package path element
// plus the type and function names.
func (s Spec) FullName() string {
	pkg := s.PkgPath
	if i := strings.LastIndex(pkg, "/"); i >= 0 {
		pkg = pkg[i+1:]
	}
	parts := []string{pkg}
	if s.TypeName != "" {
		parts = append(parts, s.TypeName)
	}
	parts = append(parts, s.FuncName)
	return strings.Join(parts, ".")
}

// Matches reports whether fn matches this specification.
func (s Spec) Matches(fn *types.Func) bool {
	if fn.Name() != s.FuncName {
		return false
	}

	pkg := fn.Pkg()
	if pkg == nil || pkg.Path() != s.PkgPath {
		return false
	}

	sig := fn.Type().(*types.Signature)
	recv := sig.Recv()

	if s.TypeName == "" {
		return recv == nil
	}
	if recv == nil {
		return false
	}

	recvType := recv.Type()
	if ptr, ok := recvType.(*types.Pointer); ok {
		recvType = ptr.Elem()
	}

	named, ok := recvType.(*types.Named)
	if !ok {
		return false
	}

	return named.Obj().Name() == s.TypeName
}

// Callee extracts the called *types.Func from a call expression.
// It returns nil when the callee cannot be determined statically.
func Callee(pass *analysis.Pass, call *ast.CallExpr) *types.Func {
	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		if f, ok := pass.TypesInfo.ObjectOf(fun).(*types.Func); ok {
			return f
		}

	case *ast.SelectorExpr:
		if sel := pass.TypesInfo.Selections[fun]; sel != nil {
			if f, ok := sel.Obj().(*types.Func); ok {
				return f
			}
		} else if f, ok := pass.TypesInfo.ObjectOf(fun.Sel).(*types.Func); ok {
			return f
		}
	}

	return nil
}
