package mercover

import (
	"fmt"
	"runtime"

	"github.com/grailbio/base/errors"
)

// MaxKmerLength is the longest kmer that fits in a Kmer.
const MaxKmerLength = 32

// Opts controls kmer database construction and coverage computation.
type Opts struct {
	// KmerLength is the length of the kmers, and hence the width of every
	// coverage piece.  Must be in [1, MaxKmerLength].
	KmerLength int
	// Canonical causes a kmer and its reverse complement to be treated as the
	// same kmer, so that database sequences match the query on either strand.
	Canonical bool
	// Parallelism is the max number of shards processed concurrently.  If <= 0,
	// runtime.NumCPU() is used.
	Parallelism int
	// MinShardLength is the minimum number of kmer start positions per shard.
	// Sequences shorter than this are processed in one shard.
	MinShardLength int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	KmerLength:     22,
	Canonical:      true,
	Parallelism:    0,
	MinShardLength: 1 << 20,
}

// Validate checks that the options are usable.
func (o Opts) Validate() error {
	if o.KmerLength < 1 || o.KmerLength > MaxKmerLength {
		return errors.E(errors.Invalid, fmt.Sprintf("kmer length must be in [1, %d], got %d", MaxKmerLength, o.KmerLength))
	}
	if o.MinShardLength < 1 {
		return errors.E(errors.Invalid, fmt.Sprintf("min shard length must be positive, got %d", o.MinShardLength))
	}
	return nil
}

func (o Opts) parallelism() int {
	if o.Parallelism <= 0 {
		return runtime.NumCPU()
	}
	return o.Parallelism
}
