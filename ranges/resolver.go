package ranges

import "strings"

// Resolve decides whether range semantics apply to a request. rawValues
// are the Range header lines exactly as received on the wire; parsed is
// the grammar-parsed candidate list, or nil if grammar parsing failed;
// length is the resource size in bytes.
//
// The multi-range check runs on the raw values before the grammar output
// is trusted: a multi-range header may parse successfully, but it is
// never honored regardless of validity.
func Resolve(rawValues []string, parsed []Candidate, length int64) Resolution {
	if len(rawValues) == 0 || rawValues[0] == "" {
		return Resolution{Outcome: NoRangeRequested}
	}
	if len(rawValues) > 1 || strings.Contains(rawValues[0], ",") {
		return Resolution{Outcome: Unsupported}
	}
	if parsed == nil {
		return Resolution{Outcome: Unsupported}
	}
	if len(parsed) > 1 {
		// The comma guard above makes more than one candidate
		// impossible for any correct grammar stage.
		panic("ranges: grammar stage produced multiple candidates for a single range spec")
	}
	if len(parsed) == 0 || length == 0 {
		return Resolution{Outcome: RangeEmpty}
	}
	r, ok := Normalize(parsed[0], length)
	if !ok {
		return Resolution{Outcome: RangeUnsatisfiable}
	}
	return Resolution{Outcome: RangeResolved, Range: r}
}

// ResolveHeader is Resolve with the built-in grammar stage: it parses
// the first raw header value itself. Callers with their own parser
// should use Resolve directly.
func ResolveHeader(rawValues []string, length int64) Resolution {
	var parsed []Candidate
	if len(rawValues) == 1 {
		parsed = ParseHeader(rawValues[0])
	}
	return Resolve(rawValues, parsed, length)
}

// Normalize maps one candidate onto a concrete byte range within a
// resource of the given length (> 0). It returns false when the
// candidate is unsatisfiable: a start at or beyond the resource, or a
// zero-length suffix. Over-length bounds are clamped rather than
// rejected.
//
// Every ok result satisfies 0 <= Start <= End < length.
func Normalize(c Candidate, length int64) (ByteRange, bool) {
	switch {
	case c.From != nil:
		from := *c.From
		if from >= length {
			return ByteRange{}, false
		}
		end := length - 1
		if c.To != nil && *c.To < length {
			end = *c.To
		}
		return ByteRange{Start: from, End: end}, true
	case c.To != nil:
		// Suffix range: To is the count of trailing bytes, not an offset.
		count := *c.To
		if count == 0 {
			return ByteRange{}, false
		}
		if count > length {
			count = length
		}
		start := length - count
		return ByteRange{Start: start, End: start + count - 1}, true
	}
	panic("ranges: candidate with neither bound present")
}
