package rewrite

import (
	"fmt"
	"regexp"
)

// InvalidPatternError is returned when a configured regexp does not compile.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid regexp %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Pattern is a compiled value filter. Two patterns are equal when their
// source strings are equal.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// CompilePattern compiles source into a Pattern
func CompilePattern(source string) (*Pattern, error) {
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: source, Err: err}
	}
	return &Pattern{source: source, re: re}, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(source string) *Pattern {
	p, err := CompilePattern(source)
	if err != nil {
		panic(err)
	}
	return p
}

// MatchString reports whether the pattern matches anywhere in value.
func (p *Pattern) MatchString(value string) bool {
	return p.re.MatchString(value)
}

// Equal compares patterns by source.
func (p *Pattern) Equal(other *Pattern) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.source == other.source
}

func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.source
}
