// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package coveragetest provides a brute-force bit-array model of
// coverage.Set for use in tests.
package coveragetest

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/grailbio/mercover/coverage"
	"github.com/pkg/errors"
)

// Reference marks one bit per covered position.  It is only practical for
// small coordinate ranges.
type Reference struct {
	bits    *bitset.BitSet
	width   uint
	nPieces uint64
}

// NewReference returns an empty Reference with the given piece width.
func NewReference(width int) *Reference {
	return &Reference{bits: bitset.New(0), width: uint(width)}
}

// AddPiece marks [lo, lo+width).
func (r *Reference) AddPiece(lo coverage.PosType) {
	r.nPieces++
	for i := uint(lo); i < uint(lo)+r.width; i++ {
		r.bits.Set(i)
	}
}

// Merge adds the coverage and piece count of o to r.  o is unchanged.
func (r *Reference) Merge(o *Reference) {
	r.bits.InPlaceUnion(o.bits)
	r.nPieces += o.nPieces
}

// Clear resets r to the empty state.
func (r *Reference) Clear() {
	r.bits.ClearAll()
	r.nPieces = 0
}

// Count returns the number of covered positions.
func (r *Reference) Count() uint64 {
	return uint64(r.bits.Count())
}

// NumPieces returns the number of pieces added.
func (r *Reference) NumPieces() uint64 {
	return r.nPieces
}

// Intervals returns the maximal runs of covered positions.
func (r *Reference) Intervals() []coverage.Interval {
	var ivs []coverage.Interval
	i, ok := r.bits.NextSet(0)
	for ok {
		j, found := r.bits.NextClear(i)
		if !found {
			j = r.bits.Len()
		}
		ivs = append(ivs, coverage.Interval{Lo: coverage.PosType(i), Hi: coverage.PosType(j)})
		i, ok = r.bits.NextSet(j)
	}
	return ivs
}

// Check returns an error describing the first disagreement between s and r,
// or nil if s covers exactly the positions marked in r with the same piece
// count.
func (r *Reference) Check(s *coverage.Set) error {
	if s.NumPieces() != r.nPieces {
		return errors.Errorf("piece count %d, reference has %d", s.NumPieces(), r.nPieces)
	}
	var prevHi coverage.PosType
	for i, iv := range s.Intervals() {
		if iv.Lo >= iv.Hi {
			return errors.Errorf("interval %d is empty: %d-%d", i, iv.Lo, iv.Hi)
		}
		if i > 0 && prevHi >= iv.Lo {
			return errors.Errorf("interval %d (%d-%d) overlaps or touches its predecessor", i, iv.Lo, iv.Hi)
		}
		prevHi = iv.Hi
		for pos := iv.Lo; pos < iv.Hi; pos++ {
			if !r.bits.Test(uint(pos)) {
				return errors.Errorf("interval %d-%d contains %d, which no piece covers", iv.Lo, iv.Hi, pos)
			}
		}
	}
	if got, want := s.TotalCoveredLength(), r.Count(); got != want {
		// Every interval position is marked, so some marked position lies
		// outside the intervals.
		for i, ok := r.bits.NextSet(0); ok; i, ok = r.bits.NextSet(i + 1) {
			if !s.Contains(coverage.PosType(i)) {
				return errors.Errorf("position %d is covered by a piece but by no interval", i)
			}
		}
		return errors.Errorf("covered length %d, reference has %d", got, want)
	}
	return nil
}
