package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/mercover/mercover"
	"github.com/klauspost/compress/gzip"
)

type outputFormat int

const (
	formatSummary outputFormat = iota
	formatBED
)

// Collection of options set via cmdline flags
type mercoverFlags struct {
	dbPaths string
	outPath string
	format  outputFormat
	opts    mercover.Opts
}

// createOutput opens path for writing, or returns stdout if path is empty.
// Output to a path ending in ".gz" is gzip-compressed.  The returned function
// must be called to flush and close the output.
func createOutput(ctx context.Context, path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	out, err := file.Create(ctx, path)
	if err != nil {
		return nil, nil, errors.E(err, "create", path)
	}
	if !strings.HasSuffix(path, ".gz") {
		return out.Writer(ctx), func() error { return out.Close(ctx) }, nil
	}
	gz := gzip.NewWriter(out.Writer(ctx))
	return gz, func() error {
		err := gz.Close()
		if e := out.Close(ctx); e != nil && err == nil {
			err = e
		}
		return err
	}, nil
}

func run(flags *mercoverFlags, queryPath string) (err error) {
	ctx := vcontext.Background()
	if flags.dbPaths == "" {
		return errors.E(errors.Invalid, "--db must be set")
	}
	db, err := mercover.LoadKmerSet(ctx, strings.Split(flags.dbPaths, ","), flags.opts)
	if err != nil {
		return err
	}
	c, err := mercover.NewCoverer(db, flags.opts)
	if err != nil {
		return err
	}
	var seqs []mercover.SeqCoverage
	var total, covered uint64
	if err = c.CoverFASTA(ctx, queryPath, func(s mercover.SeqCoverage) error {
		seqs = append(seqs, s)
		total += uint64(s.Length)
		covered += s.Covered()
		return nil
	}); err != nil {
		return err
	}
	log.Printf("%s: %d sequences, %d of %d positions covered", queryPath, len(seqs), covered, total)

	w, closeOutput, err := createOutput(ctx, flags.outPath)
	if err != nil {
		return err
	}
	defer func() {
		if e := closeOutput(); e != nil && err == nil {
			err = e
		}
	}()
	switch flags.format {
	case formatBED:
		return mercover.WriteBED(w, seqs)
	default:
		return mercover.WriteSummaryTSV(w, seqs)
	}
}
