package match

// Result describes a successful pattern-vs-topic test. It is produced once
// per delivery and carries everything a subscriber needs to interpret the
// message: the full topic, the matched span, and the captured groups.
type Result struct {
	// Topic is the full topic string the pattern was tested against.
	Topic string

	// Start and End delimit the matched span within Topic.
	Start int
	End   int

	// Groups holds the positional captures (group 0, the whole match, is
	// excluded). Groups that did not participate in the match are empty.
	Groups []string

	// Named maps named capture groups to their captured text. Nil when the
	// pattern declares no named groups.
	Named map[string]string

	// Pattern is the pattern that produced this result, so a subscriber can
	// recover the subscription's source text via Pattern.Source().
	Pattern *Pattern
}

// Matched returns the substring of Topic covered by the match span.
func (r *Result) Matched() string {
	return r.Topic[r.Start:r.End]
}

// Group returns the n-th positional capture (1-based, matching conventional
// regexp group numbering). It returns "" when n is out of range.
func (r *Result) Group(n int) string {
	if n < 1 || n > len(r.Groups) {
		return ""
	}
	return r.Groups[n-1]
}
