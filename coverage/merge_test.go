// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package coverage_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/mercover/coverage"
	"github.com/grailbio/mercover/coverage/coveragetest"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestMerge(t *testing.T) {
	a := newSet(t, 5, 3)
	b := newSet(t, 5, 0)
	a.Merge(b)
	a.CheckPanic("TestMerge")
	expect.EQ(t, a.Intervals(), []iv{{0, 8}})
	expect.EQ(t, a.NumPieces(), uint64(2))
	expect.EQ(t, a.TotalCoveredLength(), uint64(8))

	// The argument is consumed.
	expect.EQ(t, b.Len(), 0)
	expect.EQ(t, b.NumPieces(), uint64(0))
	expect.EQ(t, b.Width(), coverage.PosType(5))
}

func TestMergeCases(t *testing.T) {
	tests := []struct {
		name string
		a, b []coverage.PosType
		want []iv
	}{
		{"both empty", nil, nil, nil},
		{"empty receiver", nil, []coverage.PosType{0, 10}, []iv{{0, 4}, {10, 14}}},
		{"empty argument", []coverage.PosType{0, 10}, nil, []iv{{0, 4}, {10, 14}}},
		{"disjoint", []coverage.PosType{0, 20}, []coverage.PosType{10, 30}, []iv{{0, 4}, {10, 14}, {20, 24}, {30, 34}}},
		{"same start", []coverage.PosType{0, 1}, []coverage.PosType{0}, []iv{{0, 5}}},
		{"touching", []coverage.PosType{0}, []coverage.PosType{4}, []iv{{0, 8}}},
		{"identical", []coverage.PosType{0, 10}, []coverage.PosType{0, 10}, []iv{{0, 4}, {10, 14}}},
		// [0,6) absorbs b's [5,9), which reaches a's [9,13), which reaches b's [12,16).
		{"chain", []coverage.PosType{0, 2, 9}, []coverage.PosType{5, 12}, []iv{{0, 16}}},
		{"tail remains", []coverage.PosType{0}, []coverage.PosType{2, 20, 30}, []iv{{0, 6}, {20, 24}, {30, 34}}},
	}
	for _, test := range tests {
		a := newSet(t, 4, test.a...)
		b := newSet(t, 4, test.b...)
		a.Merge(b)
		a.CheckPanic(test.name)
		expect.EQ(t, a.Intervals(), test.want, test.name)
		expect.EQ(t, a.NumPieces(), uint64(len(test.a)+len(test.b)), test.name)
	}
}

func TestMergeSpanningBothLists(t *testing.T) {
	// One wide interval in b covers several intervals of a.
	a := newSet(t, 4, 0, 10, 20)
	b := newSet(t, 4)
	for p := coverage.PosType(2); p <= 18; p += 4 {
		b.AddPiece(p)
	}
	a.Merge(b)
	expect.EQ(t, a.Intervals(), []iv{{0, 24}})
	expect.EQ(t, a.NumPieces(), uint64(8))
}

func TestMergeNilAndSelf(t *testing.T) {
	a := newSet(t, 4, 0, 10)
	a.Merge(nil)
	expect.True(t, a.Equal(newSet(t, 4, 0, 10)))

	a.Merge(a)
	expect.EQ(t, a.Intervals(), []iv{{0, 4}, {10, 14}})
	expect.EQ(t, a.NumPieces(), uint64(4))
}

func TestMergeThenAddPiece(t *testing.T) {
	a := newSet(t, 4, 0)
	a.Merge(newSet(t, 4, 20))
	a.AddPiece(10)
	a.AddPiece(16)
	expect.EQ(t, a.Intervals(), []iv{{0, 4}, {10, 14}, {16, 24}})
	expect.EQ(t, a.NumPieces(), uint64(4))
}

func TestMergeRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		width := r.Intn(10) + 1
		plans := [3][]coverage.PosType{}
		for i := range plans {
			plans[i] = randomPlan(r, r.Intn(100), 600)
		}
		build := func(i int) *coverage.Set { return newSet(t, width, plans[i]...) }

		ref := coveragetest.NewReference(width)
		for _, plan := range plans {
			for _, p := range plan {
				ref.AddPiece(p)
			}
		}

		// (a+b)+c
		left := build(0)
		left.Merge(build(1))
		left.Merge(build(2))
		left.CheckPanic("left")
		assert.NoError(t, ref.Check(left), "iter %d", iter)

		// a+(b+c)
		right := build(1)
		right.Merge(build(2))
		a := build(0)
		a.Merge(right)
		expect.True(t, a.Equal(left), "iter %d: %v vs %v", iter, a, left)

		// Commutativity, including piece counts.
		ab, ba := build(0), build(1)
		ab.Merge(build(1))
		ba.Merge(build(0))
		expect.True(t, ab.Equal(ba), "iter %d: %v vs %v", iter, ab, ba)
		expect.EQ(t, ab.NumPieces(), uint64(len(plans[0])+len(plans[1])))

		// Merging matches adding all pieces to a single set.
		single := build(0)
		for _, p := range plans[1] {
			single.AddPiece(p)
		}
		for _, p := range plans[2] {
			single.AddPiece(p)
		}
		expect.True(t, single.Equal(left), "iter %d: %v vs %v", iter, single, left)
	}
}
