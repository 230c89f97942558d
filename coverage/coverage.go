// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package coverage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// PosType is the coordinate type.
type PosType uint64

// Interval is the half-open range [Lo, Hi).
type Interval struct {
	Lo, Hi PosType
}

// Len returns Hi - Lo.
func (iv Interval) Len() PosType {
	return iv.Hi - iv.Lo
}

// Set is a union of fixed-width pieces.
type Set struct {
	// intervals is sorted by Lo, and intervals[i].Hi < intervals[i+1].Lo.
	intervals []Interval
	// width is the piece length used by AddPiece.
	width PosType
	// nPieces counts AddPiece calls (plus the counts of merged-in sets), whether
	// or not they contributed new coverage.
	nPieces uint64
}

// New creates an empty Set whose pieces are width positions long.
func New(width int) (*Set, error) {
	if width <= 0 {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("coverage.New: width must be positive, got %d", width))
	}
	return &Set{width: PosType(width)}, nil
}

// Width returns the piece width the Set was created with.
func (s *Set) Width() PosType {
	return s.width
}

// Len returns the number of disjoint intervals.
func (s *Set) Len() int {
	return len(s.intervals)
}

// NumPieces returns the number of pieces added since creation or the last
// Clear.  Pieces which added no new coverage are still counted.
func (s *Set) NumPieces() uint64 {
	return s.nPieces
}

// TotalCoveredLength returns the number of covered positions.
func (s *Set) TotalCoveredLength() uint64 {
	var total uint64
	for _, iv := range s.intervals {
		total += uint64(iv.Hi - iv.Lo)
	}
	return total
}

// Intervals returns a copy of the interval list.
func (s *Set) Intervals() []Interval {
	return append([]Interval(nil), s.intervals...)
}

// Contains reports whether pos is covered.
func (s *Set) Contains(pos PosType) bool {
	i := sort.Search(len(s.intervals), func(i int) bool { return s.intervals[i].Hi > pos })
	return i < len(s.intervals) && s.intervals[i].Lo <= pos
}

// Clear removes all intervals and resets the piece count.  The width is
// preserved.
func (s *Set) Clear() {
	s.intervals = nil
	s.nPieces = 0
}

// AddPiece marks [lo, lo+Width()) as covered.
func (s *Set) AddPiece(lo PosType) {
	s.nPieces++
	hi := lo + s.width

	// Every interval ending before lo can be skipped: scanning from the head,
	// each of them would only move on to its successor.
	start := sort.Search(len(s.intervals), func(i int) bool { return s.intervals[i].Hi >= lo })
	if start == len(s.intervals) {
		s.intervals = append(s.intervals, Interval{lo, hi})
		return
	}
	if hi < s.intervals[start].Lo {
		s.insert(start, Interval{lo, hi})
		return
	}

	for i := start; i < len(s.intervals); i++ {
		c := &s.intervals[i]
		if c.Lo <= lo && hi <= c.Hi {
			return
		}
		if lo <= c.Lo && hi <= c.Hi {
			c.Lo = lo
			return
		}
		if lo < c.Lo {
			// The piece spans all of c.  Pieces are never narrower than the
			// intervals they create, so this means a narrower set was merged in.
			log.Panicf("coverage.AddPiece: piece [%d,%d) spans interval [%d,%d)", lo, hi, c.Lo, c.Hi)
		}
		if i+1 < len(s.intervals) {
			next := &s.intervals[i+1]
			if lo <= c.Hi {
				if hi < next.Lo {
					c.Hi = hi
					return
				}
				if hi > next.Hi {
					log.Panicf("coverage.AddPiece: piece [%d,%d) spans interval [%d,%d)", lo, hi, next.Lo, next.Hi)
				}
				c.Hi = next.Hi
				s.remove(i + 1)
				return
			}
			if hi < next.Lo {
				s.insert(i+1, Interval{lo, hi})
				return
			}
			continue
		}
		if lo <= c.Hi {
			c.Hi = hi
		} else {
			s.intervals = append(s.intervals, Interval{lo, hi})
		}
		return
	}
	log.Panicf("coverage.AddPiece: no insertion point for [%d,%d) in %v", lo, hi, s)
}

func (s *Set) insert(i int, iv Interval) {
	s.intervals = append(s.intervals, Interval{})
	copy(s.intervals[i+1:], s.intervals[i:])
	s.intervals[i] = iv
}

func (s *Set) remove(i int) {
	s.intervals = append(s.intervals[:i], s.intervals[i+1:]...)
}

// Equal reports whether s and o have the same piece count and the same
// intervals.
func (s *Set) Equal(o *Set) bool {
	if s.nPieces != o.nPieces || len(s.intervals) != len(o.intervals) {
		return false
	}
	for i, iv := range s.intervals {
		if iv != o.intervals[i] {
			return false
		}
	}
	return true
}

// String returns the intervals as "lo-hi lo-hi ...".
func (s *Set) String() string {
	var b strings.Builder
	for i, iv := range s.intervals {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d-%d", iv.Lo, iv.Hi)
	}
	return b.String()
}

// CheckPanic verifies that every interval is nonempty and that the intervals
// are sorted, disjoint and non-touching, panicking on failure.  tag is
// included in the panic message.
func (s *Set) CheckPanic(tag string) {
	for i, iv := range s.intervals {
		if iv.Lo >= iv.Hi {
			log.Panicf("interval %d is empty or inverted: [%d,%d), tag: %s", i, iv.Lo, iv.Hi, tag)
		}
		if i > 0 && s.intervals[i-1].Hi >= iv.Lo {
			prev := s.intervals[i-1]
			log.Panicf("intervals %d and %d overlap or touch: [%d,%d) [%d,%d), tag: %s",
				i-1, i, prev.Lo, prev.Hi, iv.Lo, iv.Hi, tag)
		}
	}
}
