package ranges

import (
	"fmt"
	"testing"
)

func TestParseHeader(t *testing.T) {
	testCases := []struct {
		desc     string
		val      string
		expected []Candidate
	}{
		{
			desc:     "bounded",
			val:      "bytes=0-499",
			expected: []Candidate{{From: i64(0), To: i64(499)}},
		},
		{
			desc:     "open-ended",
			val:      "bytes=500-",
			expected: []Candidate{{From: i64(500)}},
		},
		{
			desc:     "suffix",
			val:      "bytes=-200",
			expected: []Candidate{{To: i64(200)}},
		},
		{
			desc:     "whitespace tolerated",
			val:      "bytes= 0 - 499 ",
			expected: []Candidate{{From: i64(0), To: i64(499)}},
		},
		{
			desc: "multiple specs all returned",
			val:  "bytes=0-1,5-6",
			expected: []Candidate{
				{From: i64(0), To: i64(1)},
				{From: i64(5), To: i64(6)},
			},
		},
		{
			desc:     "missing unit prefix",
			val:      "0-499",
			expected: nil,
		},
		{
			desc:     "wrong unit",
			val:      "chunks=0-499",
			expected: nil,
		},
		{
			desc:     "no dash",
			val:      "bytes=100",
			expected: nil,
		},
		{
			desc:     "neither bound",
			val:      "bytes=-",
			expected: nil,
		},
		{
			desc:     "non-numeric start",
			val:      "bytes=abc-10",
			expected: nil,
		},
		{
			desc:     "non-numeric end",
			val:      "bytes=0-xyz",
			expected: nil,
		},
		{
			desc:     "negative position",
			val:      "bytes=--5",
			expected: nil,
		},
		{
			desc:     "last byte before first byte",
			val:      "bytes=10-5",
			expected: nil,
		},
		{
			desc:     "empty spec list",
			val:      "bytes=",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := ParseHeader(tc.val)
			if len(got) != len(tc.expected) {
				t.Fatalf("ParseHeader(%q) = %+v, want %+v", tc.val, got, tc.expected)
			}
			for i := range got {
				if !equalCandidate(got[i], tc.expected[i]) {
					t.Errorf("candidate %d: got %s, want %s", i, fmtCandidate(got[i]), fmtCandidate(tc.expected[i]))
				}
			}
		})
	}
}

func equalCandidate(a, b Candidate) bool {
	return fmtCandidate(a) == fmtCandidate(b)
}

func fmtCandidate(c Candidate) string {
	bound := func(v *int64) string {
		if v == nil {
			return "none"
		}
		return fmt.Sprintf("%d", *v)
	}
	return fmt.Sprintf("{from:%s to:%s}", bound(c.From), bound(c.To))
}
