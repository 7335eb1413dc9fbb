// Package ranges resolves HTTP Range request headers into a single
// servable byte range against a resource of known length, per RFC 7233.
// Multi-range requests are never honored: a client could ask for
// pathological range sets (one byte per range) to force excessive I/O,
// so anything beyond a single simple range falls back to a full response.
package ranges

import "strconv"

// Candidate is one grammar-parsed byte-range-spec. A nil From means the
// spec was a suffix range ("-N", last N bytes, To is a count); a nil To
// means the spec was open-ended ("N-"). The grammar stage guarantees at
// least one bound is present.
type Candidate struct {
	From *int64
	To   *int64
}

// ByteRange is a fully resolved, end-inclusive byte range satisfying
// 0 <= Start <= End < length of the resource it was resolved against.
type ByteRange struct {
	Start int64
	End   int64
}

// Length returns the number of bytes the range covers.
func (r ByteRange) Length() int64 {
	return r.End - r.Start + 1
}

// ContentRange composes a Content-Range header value for a 206 response,
// ie: "bytes 0-99/1000".
func (r ByteRange) ContentRange(total int64) string {
	return "bytes " + strconv.FormatInt(r.Start, 10) + "-" + strconv.FormatInt(r.End, 10) + "/" + strconv.FormatInt(total, 10)
}

// ContentRangeUnsatisfied composes the Content-Range header value for a
// 416 response, ie: "bytes */1000".
func ContentRangeUnsatisfied(total int64) string {
	return "bytes */" + strconv.FormatInt(total, 10)
}

// Outcome says whether and how range semantics apply to a request.
type Outcome int

const (
	// NoRangeRequested means no Range header was present; serve the
	// full content with 200.
	NoRangeRequested Outcome = iota
	// Unsupported means a Range header was present but was malformed
	// or asked for multiple ranges; ignore range semantics entirely
	// and serve the full content with 200.
	Unsupported
	// RangeEmpty means a single well-formed range was requested but
	// there is nothing to range over (zero-length resource or an empty
	// candidate list); serve the full content with 200.
	RangeEmpty
	// RangeUnsatisfiable means the single requested range maps onto no
	// valid offset; respond 416 with "Content-Range: bytes */length".
	RangeUnsatisfiable
	// RangeResolved means Range holds a satisfiable byte range;
	// respond 206 with the corresponding Content-Range header.
	RangeResolved
)

func (o Outcome) String() string {
	switch o {
	case NoRangeRequested:
		return "no-range-requested"
	case Unsupported:
		return "unsupported"
	case RangeEmpty:
		return "empty"
	case RangeUnsatisfiable:
		return "unsatisfiable"
	case RangeResolved:
		return "resolved"
	}
	return "unknown"
}

// Resolution is the result of resolving a request's Range header.
// Range is only meaningful when Outcome is RangeResolved.
type Resolution struct {
	Outcome Outcome
	Range   ByteRange
}
