package match

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is returned by Compile when the pattern source is not a
// valid regular expression. Use errors.Is to detect it; the wrapped error
// carries the compile detail.
var ErrInvalidPattern = errors.New("invalid topic pattern")

// Pattern is a compiled topic pattern. It pairs the compiled regular
// expression with its original source text and is immutable after Compile.
type Pattern struct {
	re     *regexp.Regexp
	source string
}

// Compile parses source as a regular expression and returns a Pattern ready
// to match topics. The error wraps ErrInvalidPattern when source does not
// compile.
func Compile(source string) (*Pattern, error) {
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &Pattern{re: re, source: source}, nil
}

// MustCompile is like Compile but panics on invalid source. It simplifies
// package-level pattern variables, mirroring regexp.MustCompile.
func MustCompile(source string) *Pattern {
	p, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return p
}

// Source returns the original pattern text passed to Compile.
func (p *Pattern) Source() string {
	return p.source
}

// String implements fmt.Stringer.
func (p *Pattern) String() string {
	return p.source
}

// Match tests the pattern against topic using search semantics and reports
// whether it matched. On a match it returns a Result describing the span and
// the captured groups; otherwise the Result is nil.
func (p *Pattern) Match(topic string) (*Result, bool) {
	idx := p.re.FindStringSubmatchIndex(topic)
	if idx == nil {
		return nil, false
	}

	groups := make([]string, 0, p.re.NumSubexp())
	var named map[string]string
	names := p.re.SubexpNames()
	for i := 1; i < len(names); i++ {
		var g string
		// Non-participating groups keep negative indexes; report them empty.
		if start, end := idx[2*i], idx[2*i+1]; start >= 0 {
			g = topic[start:end]
		}
		groups = append(groups, g)
		if names[i] != "" {
			if named == nil {
				named = make(map[string]string)
			}
			named[names[i]] = g
		}
	}

	return &Result{
		Topic:   topic,
		Start:   idx[0],
		End:     idx[1],
		Groups:  groups,
		Named:   named,
		Pattern: p,
	}, true
}
