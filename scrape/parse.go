package scrape

import (
	"regexp"
	"strings"

	"github.com/fwojciec/smartscrape"
	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
)

var fenceRe = regexp.MustCompile("(?s)^```[A-Za-z0-9_-]*[ \t]*\n?(.*?)\n?[ \t]*```$")

// ParseReply decodes a model reply into a structured value.
// Markdown code fences are removed and the body is decoded as JSON5, so
// comments, unquoted keys and single-quoted strings are accepted. When the
// reply wraps the value in prose, the outermost object or array is used.
func ParseReply(reply string) (any, error) {
	s := strings.TrimSpace(reply)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
	}
	if s == "" {
		return nil, smartscrape.Errorf(smartscrape.EINTERNAL, "model returned an empty reply")
	}

	var v any
	err := json5.Unmarshal([]byte(s), &v)
	if err == nil {
		return v, nil
	}
	if inner, ok := outermostValue(s); ok && inner != s {
		if json5.Unmarshal([]byte(inner), &v) == nil {
			return v, nil
		}
	}
	return nil, smartscrape.Errorf(smartscrape.EINTERNAL, "model reply is not valid JSON: %v", err)
}

// outermostValue returns the span from the first opening brace or bracket
// to the last matching closer.
func outermostValue(s string) (string, bool) {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return "", false
	}
	closer := byte('}')
	if s[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(s, closer)
	if end <= start {
		return "", false
	}
	return s[start : end+1], true
}
