package mercover

const invalidKmerBits = uint8(255)

var (
	asciiToKmerMap                  [256]uint8
	asciiToReverseComplementKmerMap [256]uint8
)

func init() {
	for i := range asciiToKmerMap {
		asciiToKmerMap[i] = invalidKmerBits
		asciiToReverseComplementKmerMap[i] = invalidKmerBits
	}
	for i, ch := range "ACGT" {
		asciiToKmerMap[ch] = uint8(i)
		asciiToKmerMap[ch+'a'-'A'] = uint8(i)
		asciiToReverseComplementKmerMap[ch] = uint8(3 - i)
		asciiToReverseComplementKmerMap[ch+'a'-'A'] = uint8(3 - i)
	}
}

// Kmer is a 2-bit-per-base encoding of a sequence of ACGT, up to
// MaxKmerLength bases.  The first base occupies the most significant bits.
type Kmer uint64

// kmerAtPos is the kmer starting at pos.
type kmerAtPos struct {
	pos int
	// forward and reverseComplement encode seq[pos, pos+k).
	forward, reverseComplement Kmer
}

func (km kmerAtPos) canonical() Kmer {
	if km.forward < km.reverseComplement {
		return km.forward
	}
	return km.reverseComplement
}

// encodeKmer encodes seq[start:limit].  If the range contains a base other
// than ACGT, it returns the index of the last such base and false.
func encodeKmer(seq string, start, limit int) (Kmer, int, bool) {
	var k Kmer
	for i := start; i < limit; i++ {
		b := asciiToKmerMap[seq[i]]
		if b == invalidKmerBits {
			for j := limit - 1; j > i; j-- {
				if asciiToKmerMap[seq[j]] == invalidKmerBits {
					return 0, j, false
				}
			}
			return 0, i, false
		}
		k = (k << 2) | Kmer(b)
	}
	return k, 0, true
}

// reverseComplementKmer encodes the reverse complement of seq[start:limit],
// which must contain only ACGT.
func reverseComplementKmer(seq string, start, limit int) Kmer {
	var k Kmer
	for i := limit - 1; i >= start; i-- {
		k = (k << 2) | Kmer(asciiToReverseComplementKmerMap[seq[i]])
	}
	return k
}

// kmerizer iterates over the kmers of a sequence, skipping every window that
// contains a base other than ACGT.
type kmerizer struct {
	kmerLength int
	mask       Kmer // ~0 << (2*kmerLength)

	seq string
	si  int // start of the next window.
	cur kmerAtPos
}

func newKmerizer(kmerLength int) *kmerizer {
	return &kmerizer{
		kmerLength: kmerLength,
		mask:       ^(Kmer(0xffffffffffffffff) << Kmer(kmerLength*2 /*2==#bits per base*/)),
	}
}

func (k *kmerizer) Reset(seq string) {
	k.seq = seq
	k.si = 0
}

func (k *kmerizer) Scan() bool {
	if k.si > 0 /*k.cur is set*/ && k.si+k.kmerLength <= len(k.seq) {
		nextCh := k.seq[k.si+k.kmerLength-1]
		if bits := asciiToKmerMap[nextCh]; bits != invalidKmerBits {
			// Fast path. Shift the new base into both encodings.
			k.cur.pos = k.si
			k.cur.forward = ((k.cur.forward << 2) | Kmer(bits)) & k.mask
			shift := (Kmer(k.kmerLength) - 1) * 2
			k.cur.reverseComplement = (k.cur.reverseComplement >> 2) | (Kmer(asciiToReverseComplementKmerMap[nextCh]) << shift)
			k.si++
			return true
		}
		// No window containing nextCh is valid.
		k.si += k.kmerLength
	}

	for k.si+k.kmerLength <= len(k.seq) {
		limit := k.si + k.kmerLength
		forward, bad, ok := encodeKmer(k.seq, k.si, limit)
		if !ok {
			k.si = bad + 1
			continue
		}
		k.cur = kmerAtPos{
			pos:               k.si,
			forward:           forward,
			reverseComplement: reverseComplementKmer(k.seq, k.si, limit),
		}
		k.si++
		return true
	}
	return false
}

func (k *kmerizer) Get() kmerAtPos { return k.cur }
