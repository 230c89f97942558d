package mercover

import (
	"context"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/mercover/encoding/fasta"
	"golang.org/x/sync/errgroup"
)

// scanFASTA calls fn for every record in the FASTA file at path.  The file may
// be compressed.
func scanFASTA(ctx context.Context, path string, fn func(name, seq string) error) (err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return errors.E(err, "open", path)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = e
		}
	}()
	reader, _ := compress.NewReader(in.Reader(ctx))
	defer func() {
		if e := reader.Close(); e != nil && err == nil {
			err = e
		}
	}()
	sc := fasta.NewScanner(reader)
	for sc.Scan() {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = fn(sc.Name(), sc.Seq()); err != nil {
			return err
		}
	}
	if err = sc.Err(); err != nil {
		return errors.E(err, "read", path)
	}
	return nil
}

// LoadKmerSet builds a kmer database from the FASTA files in paths.  The files
// are read concurrently.
func LoadKmerSet(ctx context.Context, paths []string, opts Opts) (*KmerSet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.E(errors.Invalid, "no kmer database files given")
	}
	sets := make([]*KmerSet, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i := range paths {
		i := i
		g.Go(func() error {
			set := NewKmerSet(opts.KmerLength, opts.Canonical)
			nSeq, nKmer := 0, 0
			err := scanFASTA(gctx, paths[i], func(name, seq string) error {
				nSeq++
				nKmer += set.AddSequence(seq)
				return nil
			})
			if err != nil {
				return err
			}
			log.Printf("%s: %d sequences, %d kmers, %d distinct", paths[i], nSeq, nKmer, set.Len())
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, set := range sets[1:] {
		sets[0].Merge(set)
	}
	return sets[0], nil
}

// CoverFASTA computes the coverage of every sequence in the FASTA file at
// path, calling fn on each in file order.
func (c *Coverer) CoverFASTA(ctx context.Context, path string, fn func(SeqCoverage) error) error {
	return scanFASTA(ctx, path, func(name, seq string) error {
		return fn(SeqCoverage{Name: name, Length: len(seq), Set: c.Cover(seq)})
	})
}

// WriteSummaryTSV writes one line per sequence with its length, the number of
// covered positions, the number of database kmers found and the covered
// fraction.
func WriteSummaryTSV(w io.Writer, seqs []SeqCoverage) error {
	out := tsv.NewWriter(w)
	out.WriteString("#NAME\tLENGTH\tCOVERED\tPIECES\tFRACTION")
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, s := range seqs {
		out.WriteString(s.Name)
		out.WriteInt64(int64(s.Length))
		out.WriteInt64(int64(s.Covered()))
		out.WriteInt64(int64(s.Set.NumPieces()))
		out.WriteFloat64(s.Fraction(), 'f', 6)
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}

// WriteBED writes the covered intervals as 0-based half-open BED records.
func WriteBED(w io.Writer, seqs []SeqCoverage) error {
	out := tsv.NewWriter(w)
	for _, s := range seqs {
		for _, iv := range s.Set.Intervals() {
			out.WriteString(s.Name)
			out.WriteInt64(int64(iv.Lo))
			out.WriteInt64(int64(iv.Hi))
			if err := out.EndLine(); err != nil {
				return err
			}
		}
	}
	return out.Flush()
}
