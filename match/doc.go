// Package match provides the topic-matching primitives for the subpub broker:
// compiled regular-expression patterns, structured match results, and a
// translator for MQTT-style topic filters.
//
// # Patterns
//
// A Pattern wraps a compiled regular expression together with its original
// source text. Matching uses search semantics: the pattern is tested anywhere
// within the topic string unless it anchors itself with ^ and $.
//
//	p, err := match.Compile(`/food/(\w+)/order-(\d+)`)
//	if err != nil {
//	    // errors.Is(err, match.ErrInvalidPattern) == true for bad regexps
//	}
//
//	res, ok := p.Match("/food/pizza/order-66")
//	// ok == true
//	// res.Groups == []string{"pizza", "66"}
//	// res.Matched() == "/food/pizza/order-66"
//
// Named capture groups are exposed through Result.Named:
//
//	p, _ := match.Compile(`/sensor/(?P<room>\w+)/temp`)
//	res, _ := p.Match("/sensor/kitchen/temp")
//	// res.Named["room"] == "kitchen"
//
// # MQTT-Style Filters
//
// MQTT translates an MQTT topic filter into an equivalent regular expression:
// the single-level wildcard "+" becomes "([^/]*)" and the multi-level
// wildcard "#" becomes "(.*)$". Literal segments are quoted, so filters may
// contain characters that are special to regular expressions.
//
//	p, _ := match.CompileMQTT("room/3/sensor/+/temperature/#")
//	res, _ := p.Match("room/3/sensor/s12/temperature/outdoor/north")
//	// res.Groups == []string{"s12", "outdoor/north"}
//
// # Purity
//
// Compile and Match are pure functions of their inputs; a Pattern is immutable
// once created and safe for concurrent use.
package match
