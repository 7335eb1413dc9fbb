package ranges

import (
	"strconv"
	"strings"
)

// ParseHeader is the grammar stage: it turns one raw Range header value
// into structured candidates, or nil if the value violates the RFC 7233
// byte-ranges grammar. It makes no policy decisions; every
// comma-separated spec is returned and it is the resolver that refuses
// to honor more than one.
func ParseHeader(s string) []Candidate {
	const b = "bytes="
	if !strings.HasPrefix(s, b) {
		return nil
	}

	var candidates []Candidate
	for _, ra := range strings.Split(s[len(b):], ",") {
		ra = strings.TrimSpace(ra)
		if ra == "" {
			continue
		}
		i := strings.Index(ra, "-")
		if i < 0 {
			return nil
		}
		start, end := strings.TrimSpace(ra[:i]), strings.TrimSpace(ra[i+1:])

		var c Candidate
		if start != "" {
			from, err := strconv.ParseInt(start, 10, 64)
			if err != nil || from < 0 {
				return nil
			}
			c.From = &from
		}
		if end != "" {
			to, err := strconv.ParseInt(end, 10, 64)
			if err != nil || to < 0 {
				return nil
			}
			c.To = &to
		}
		if c.From == nil && c.To == nil {
			return nil
		}
		if c.From != nil && c.To != nil && *c.To < *c.From {
			return nil
		}
		candidates = append(candidates, c)
	}
	if candidates == nil {
		return nil
	}
	return candidates
}
