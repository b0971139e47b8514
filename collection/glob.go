package collection

import (
	"github.com/gobwas/glob"
	"github.com/jmgilman/go/collection/errors"
)

// patternSet matches a name against a list of compiled glob patterns.
type patternSet []glob.Glob

func compilePatterns(patterns []string) (patternSet, error) {
	set := make(patternSet, 0, len(patterns))
	for _, p := range patterns {
		g, err := compileGlob(p)
		if err != nil {
			return nil, err
		}
		set = append(set, g)
	}
	return set, nil
}

func compileGlob(pattern string) (glob.Glob, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "invalid glob pattern",
			map[string]interface{}{"pattern": pattern})
	}
	return g, nil
}

// match tests both the full name and its final component.
func (s patternSet) match(name string) bool {
	base := baseName(name)
	for _, g := range s {
		if g.Match(name) || g.Match(base) {
			return true
		}
	}
	return false
}

// Glob returns the entries of c whose name or final component matches
// pattern, in collection order. Patterns use "/" as the separator: "*"
// stays within one component and "**" crosses components.
//
// Example:
//
//	docs, err := collection.Glob(c, "docs/**.md")
func Glob(c Collection, pattern string) ([]*Entry, error) {
	set, err := compilePatterns([]string{pattern})
	if err != nil {
		return nil, err
	}

	entries, err := c.Entries()
	if err != nil {
		return nil, err
	}

	matched := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if e.name != "" && set.match(e.name) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}
