// Package ignore handles //parameterize:ignore directives.
package ignore

import (
	"go/ast"
	"go/token"
	"strings"
)

// CheckerName represents a checker that can be ignored.
type CheckerName string

// Valid checker names.
const (
	Discard CheckerName = "discard"
	Defer   CheckerName = "defer"
)

// AllCheckerNames returns all valid checker names.
func AllCheckerNames() []CheckerName {
	return []CheckerName{Discard, Defer}
}

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos      token.Pos            // position of the directive comment
	checkers []CheckerName        // listed checker names (empty = all)
	used     map[CheckerName]bool // usage per checker
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// EnabledCheckers tracks which checkers are currently enabled.
type EnabledCheckers map[CheckerName]bool

// Build scans a file for ignore directives and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if checkers, ok := parseDirective(c.Text); ok {
				line := fset.Position(c.Pos()).Line
				m[line] = &Entry{
					pos:      c.Pos(),
					checkers: checkers,
					used:     make(map[CheckerName]bool),
				}
			}
		}
	}

	return m
}

// parseDirective parses an ignore directive and returns the checker
// names, or false if the comment is not a directive.
//
// Supported formats:
//   - //parameterize:ignore                  -> ignore all checkers
//   - //parameterize:ignore discard          -> ignore one checker
//   - //parameterize:ignore discard,defer    -> ignore several
//   - //parameterize:ignore - reason         -> ignore all, with comment
//   - //parameterize:ignore defer - reason   -> ignore one, with comment
func parseDirective(text string) ([]CheckerName, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "parameterize:ignore") {
		return nil, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(text, "parameterize:ignore"))
	if rest == "" {
		return nil, true
	}

	// Strip trailing human-readable comments.
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, "//"); idx >= 0 {
		rest = rest[:idx]
	}
	if strings.HasPrefix(rest, "- ") || rest == "-" {
		return nil, true
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, true
	}

	parts := strings.Split(rest, ",")
	checkers := make([]CheckerName, 0, len(parts))
	for _, part := range parts {
		if name := CheckerName(strings.TrimSpace(part)); name != "" {
			checkers = append(checkers, name)
		}
	}

	return checkers, true
}

// ShouldIgnore reports whether the given line is ignored for the
// specified checker, checking the same line and the line above. A hit
// marks the entry as used.
func (m Map) ShouldIgnore(line int, checker CheckerName) bool {
	return m.ignoreEntry(m[line], checker) || m.ignoreEntry(m[line-1], checker)
}

func (m Map) ignoreEntry(entry *Entry, checker CheckerName) bool {
	if entry == nil {
		return false
	}

	if len(entry.checkers) == 0 {
		entry.used[checker] = true
		return true
	}

	for _, c := range entry.checkers {
		if c == checker {
			entry.used[checker] = true
			return true
		}
	}

	return false
}

// UnusedIgnore represents an unused ignore directive.
type UnusedIgnore struct {
	Pos      token.Pos
	Checkers []CheckerName // unused checker names (empty if the whole directive is unused)
}

// GetUnusedIgnores returns directives that suppressed nothing. The
// enabled set decides which checker-specific entries are reportable.
func (m Map) GetUnusedIgnores(enabled EnabledCheckers) []UnusedIgnore {
	var unused []UnusedIgnore

	for _, entry := range m {
		if len(entry.checkers) == 0 {
			anyUsed := false
			for checker := range enabled {
				if entry.used[checker] {
					anyUsed = true
					break
				}
			}
			if !anyUsed {
				unused = append(unused, UnusedIgnore{Pos: entry.pos})
			}
			continue
		}

		var unusedCheckers []CheckerName
		for _, checker := range entry.checkers {
			// A name for a disabled checker is reported too; it is
			// either a typo or a leftover.
			if !enabled[checker] || !entry.used[checker] {
				unusedCheckers = append(unusedCheckers, checker)
			}
		}
		if len(unusedCheckers) > 0 {
			unused = append(unused, UnusedIgnore{
				Pos:      entry.pos,
				Checkers: unusedCheckers,
			})
		}
	}

	return unused
}
