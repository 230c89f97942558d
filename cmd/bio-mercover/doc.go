/*Command bio-mercover reports how much of each query sequence is covered by
  kmers from a kmer database.

  The database is the set of all kmers (with --canonical, kmers and their
  reverse complements) of the sequences in one or more FASTA files.  A query
  position p is covered when some database kmer starts at p or at one of the
  k-1 positions before it.

  bio-mercover summary writes one TSV line per query sequence:

    #NAME  LENGTH  COVERED  PIECES  FRACTION

  where PIECES is the number of query kmers found in the database.

  bio-mercover bed writes the covered intervals as a BED file.

  Usage:
    bio-mercover summary --db=repeats.fa,vectors.fa.gz --k=22 query.fa
    bio-mercover bed --db=repeats.fa --out=covered.bed.gz query.fa
*/
package main
