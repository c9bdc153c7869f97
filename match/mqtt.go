package match

import (
	"regexp"
	"strings"
)

// MQTT translates an MQTT topic filter into regular-expression source text.
// The single-level wildcard "+" matches one topic segment and captures it as
// "([^/]*)"; the multi-level wildcard "#" matches the remainder of the topic
// and captures it as "(.*)$". Literal segments are quoted, so regexp special
// characters in them are matched verbatim. Segments after a "#" are ignored,
// as MQTT requires the multi-level wildcard to be last.
func MQTT(filter string) string {
	segments := strings.Split(filter, "/")
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "+":
			parts = append(parts, "([^/]*)")
		case "#":
			parts = append(parts, "(.*)$")
			return strings.Join(parts, "/")
		default:
			parts = append(parts, regexp.QuoteMeta(seg))
		}
	}
	return strings.Join(parts, "/")
}

// CompileMQTT translates an MQTT topic filter with MQTT and compiles the
// resulting pattern.
func CompileMQTT(filter string) (*Pattern, error) {
	return Compile(MQTT(filter))
}
