package coveragetest_test

import (
	"testing"

	"github.com/grailbio/mercover/coverage"
	"github.com/grailbio/mercover/coverage/coveragetest"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestReference(t *testing.T) {
	a := coveragetest.NewReference(4)
	a.AddPiece(10)
	a.AddPiece(12)
	b := coveragetest.NewReference(4)
	b.AddPiece(20)
	a.Merge(b)
	expect.EQ(t, a.Intervals(), []coverage.Interval{{Lo: 10, Hi: 16}, {Lo: 20, Hi: 24}})
	expect.EQ(t, a.Count(), uint64(10))
	expect.EQ(t, a.NumPieces(), uint64(3))

	s, err := coverage.New(4)
	assert.NoError(t, err)
	for _, p := range []coverage.PosType{10, 12, 20} {
		s.AddPiece(p)
	}
	expect.NoError(t, a.Check(s))

	s.AddPiece(30)
	expect.True(t, a.Check(s) != nil)
	a.AddPiece(31)
	expect.True(t, a.Check(s) != nil)

	a.Clear()
	expect.EQ(t, a.Count(), uint64(0))
	expect.EQ(t, len(a.Intervals()), 0)
}
