// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Package mercover computes which positions of query sequences are covered by
  kmers drawn from a kmer database.

  The database is built from one or more FASTA files (LoadKmerSet).  For every
  query sequence, each position p whose kmer seq[p, p+k) is in the database
  contributes the piece [p, p+k) to a coverage.Set.  Long sequences are split
  into shards that are processed in parallel, each into its own coverage.Set;
  the shard sets are then merged.
*/
package mercover
