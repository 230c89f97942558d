package mercover

import (
	farm "github.com/dgryski/go-farm"
	"github.com/grailbio/base/traverse"
)

// nKmerSetShard is the number of shards in a KmerSet.  The upper 8 bits of
// farmhash(kmer) pick the shard.
const nKmerSetShard = 256

// KmerSet is a set of kmers of a fixed length.  It is physically sharded so
// that two sets can be merged shard-by-shard in parallel.  A KmerSet is safe
// for concurrent reads, but not for concurrent writes.
type KmerSet struct {
	kmerLength int
	canonical  bool
	shards     [nKmerSetShard]map[Kmer]struct{}
}

// NewKmerSet creates an empty set.  If canonical is true, every kmer is
// stored and looked up as min(kmer, reverse-complement(kmer)).
func NewKmerSet(kmerLength int, canonical bool) *KmerSet {
	s := &KmerSet{kmerLength: kmerLength, canonical: canonical}
	for i := range s.shards {
		s.shards[i] = make(map[Kmer]struct{})
	}
	return s
}

func hashKmer(k Kmer) uint64 {
	return farm.Hash64WithSeed(nil, uint64(k))
}

func (s *KmerSet) shard(k Kmer) map[Kmer]struct{} {
	return s.shards[hashKmer(k)>>56]
}

func (s *KmerSet) key(km kmerAtPos) Kmer {
	if s.canonical {
		return km.canonical()
	}
	return km.forward
}

// KmerLength returns the length of the kmers in the set.
func (s *KmerSet) KmerLength() int { return s.kmerLength }

// Len returns the number of distinct kmers.
func (s *KmerSet) Len() int {
	n := 0
	for _, m := range s.shards {
		n += len(m)
	}
	return n
}

// AddSequence adds every kmer of seq that consists only of ACGT.  It returns
// the number of kmers scanned.
func (s *KmerSet) AddSequence(seq string) int {
	k := newKmerizer(s.kmerLength)
	k.Reset(seq)
	n := 0
	for k.Scan() {
		key := s.key(k.Get())
		s.shard(key)[key] = struct{}{}
		n++
	}
	return n
}

// HasSequence reports whether seq, which must be KmerLength() bases long, is
// in the set.
func (s *KmerSet) HasSequence(seq string) bool {
	if len(seq) != s.kmerLength {
		return false
	}
	k := newKmerizer(s.kmerLength)
	k.Reset(seq)
	return k.Scan() && s.has(k.Get())
}

func (s *KmerSet) has(km kmerAtPos) bool {
	key := s.key(km)
	_, ok := s.shard(key)[key]
	return ok
}

// Merge adds every kmer in other to s.  Both sets must have the same kmer
// length and canonicalization.  other is unchanged.
func (s *KmerSet) Merge(other *KmerSet) {
	_ = traverse.Each(nKmerSetShard, func(i int) error {
		dst := s.shards[i]
		for k := range other.shards[i] {
			dst[k] = struct{}{}
		}
		return nil
	})
}
