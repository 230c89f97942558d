package mercover

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/mercover/coverage"
	"v.io/x/lib/vlog"
)

// Coverer computes kmer coverage of query sequences against a kmer database.
// Coverer is thread-compatible; concurrent Cover calls are fine as long as DB
// is not modified.
type Coverer struct {
	Opts Opts
	DB   *KmerSet
}

// NewCoverer creates a Coverer.  The database kmer length must match
// opts.KmerLength.
func NewCoverer(db *KmerSet, opts Opts) (*Coverer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if db.KmerLength() != opts.KmerLength {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("database kmer length %d, opts kmer length %d", db.KmerLength(), opts.KmerLength))
	}
	return &Coverer{Opts: opts, DB: db}, nil
}

// coverRange adds a piece for every kmer starting in [start, limit) that is in
// the database.
func (c *Coverer) coverRange(seq string, start, limit int, set *coverage.Set) {
	end := limit + c.Opts.KmerLength - 1
	if end > len(seq) {
		end = len(seq)
	}
	k := newKmerizer(c.Opts.KmerLength)
	k.Reset(seq[start:end])
	for k.Scan() {
		km := k.Get()
		if c.DB.has(km) {
			set.AddPiece(coverage.PosType(start + km.pos))
		}
	}
}

// Cover returns the coverage of seq.  Positions are 0-based offsets into seq.
func (c *Coverer) Cover(seq string) *coverage.Set {
	nPos := len(seq) - c.Opts.KmerLength + 1
	if nPos < 0 {
		nPos = 0
	}
	nShard := (nPos + c.Opts.MinShardLength - 1) / c.Opts.MinShardLength
	if p := c.Opts.parallelism(); nShard > p {
		nShard = p
	}
	if nShard < 1 {
		nShard = 1
	}
	sets := make([]*coverage.Set, nShard)
	err := traverse.Each(nShard, func(shard int) error {
		start := (shard * nPos) / nShard
		limit := ((shard + 1) * nPos) / nShard
		set, err := coverage.New(c.Opts.KmerLength)
		if err != nil {
			return err
		}
		c.coverRange(seq, start, limit, set)
		vlog.VI(1).Infof("shard %d/%d [%d,%d): %d intervals, %d pieces", shard, nShard, start, limit, set.Len(), set.NumPieces())
		sets[shard] = set
		return nil
	})
	if err != nil {
		// The kmer length was validated in NewCoverer.
		log.Panic(err)
	}
	result := sets[0]
	for _, set := range sets[1:] {
		result.Merge(set)
	}
	return result
}

// SeqCoverage is the coverage of one named sequence.
type SeqCoverage struct {
	Name   string
	Length int
	Set    *coverage.Set
}

// Covered returns the number of covered positions.
func (s SeqCoverage) Covered() uint64 {
	return s.Set.TotalCoveredLength()
}

// Fraction returns the covered fraction of the sequence, or 0 for an empty
// sequence.
func (s SeqCoverage) Fraction() float64 {
	if s.Length == 0 {
		return 0
	}
	return float64(s.Covered()) / float64(s.Length)
}
