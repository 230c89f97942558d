package cmd

import (
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/mercover/mercover"
	"v.io/x/lib/cmdline"
)

func registerFlags(cmd *cmdline.Command) *mercoverFlags {
	flags := &mercoverFlags{}
	cmd.Flags.StringVar(&flags.dbPaths, "db", "", "Comma-separated list of FASTA files (optionally compressed) whose kmers form the database")
	cmd.Flags.StringVar(&flags.outPath, "out", "", "Output path. If empty, write to stdout. A .gz suffix enables gzip compression")
	cmd.Flags.IntVar(&flags.opts.KmerLength, "k", mercover.DefaultOpts.KmerLength, "Kmer length, at most 32")
	cmd.Flags.BoolVar(&flags.opts.Canonical, "canonical", mercover.DefaultOpts.Canonical, "Match kmers on either strand")
	cmd.Flags.IntVar(&flags.opts.Parallelism, "parallelism", mercover.DefaultOpts.Parallelism, "Max number of shards processed concurrently. If <= 0, use the number of CPUs")
	cmd.Flags.IntVar(&flags.opts.MinShardLength, "min-shard-length", mercover.DefaultOpts.MinShardLength, "Minimum number of kmer positions per shard")
	return flags
}

func newCmd(name, short string, format outputFormat) *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     name,
		Short:    short,
		ArgsName: "query.fa",
	}
	flags := registerFlags(cmd)
	flags.format = format
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("%s takes one query FASTA path, but got %v", name, argv)
		}
		return run(flags, argv[0])
	})
	return cmd
}

// Run parses the command line and runs the selected subcommand.
func Run() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-mercover",
			Short:    "Compute kmer coverage of FASTA sequences",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmd("summary", "Write per-sequence coverage statistics as TSV", formatSummary),
				newCmd("bed", "Write covered intervals as BED", formatBED),
			},
		})
}
