// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package coverage

// Merge adds the intervals and piece count of other to s.  other must have the
// same width as s; this is not checked.
//
// Merge consumes other: on return it is empty, as if Clear had been called.
// Merging a Set into itself doubles its piece count and leaves the intervals
// unchanged.  Merging nil is a no-op.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	if other == s {
		s.nPieces *= 2
		return
	}
	s.intervals = mergeIntervals(s.intervals, other.intervals)
	s.nPieces += other.nPieces
	other.Clear()
}

// mergeIntervals returns the union of two sorted, disjoint, non-touching
// interval lists.  a and b are not modified.
func mergeIntervals(a, b []Interval) []Interval {
	if len(a) == 0 {
		return append([]Interval(nil), b...)
	}
	if len(b) == 0 {
		return append([]Interval(nil), a...)
	}
	out := make([]Interval, 0, len(a)+len(b))
	ai, bi := 0, 0
	for ai < len(a) && bi < len(b) {
		var cur Interval
		switch {
		case a[ai].Lo == b[bi].Lo:
			cur = a[ai]
			if cur.Hi < b[bi].Hi {
				cur.Hi = b[bi].Hi
			}
			ai++
			bi++
		case a[ai].Lo < b[bi].Lo:
			cur = a[ai]
			ai++
		default:
			cur = b[bi]
			bi++
		}
		// Absorbing from one list can extend cur.Hi far enough to reach the next
		// interval of the other, so keep checking both heads until neither
		// moves.
		for modified := true; modified; {
			modified = false
			if ai < len(a) && a[ai].Lo <= cur.Hi {
				if cur.Hi < a[ai].Hi {
					cur.Hi = a[ai].Hi
				}
				ai++
				modified = true
			}
			if bi < len(b) && b[bi].Lo <= cur.Hi {
				if cur.Hi < b[bi].Hi {
					cur.Hi = b[bi].Hi
				}
				bi++
				modified = true
			}
		}
		out = append(out, cur)
	}
	out = append(out, a[ai:]...)
	return append(out, b[bi:]...)
}
