// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Package coverage tracks which positions of a sequence are covered by
  fixed-width pieces (typically kmers).  Coverage is stored as a sorted list of
  disjoint half-open intervals; intervals that overlap or touch are always
  coalesced, so two consecutive intervals A and B satisfy A.Hi < B.Lo.

  A Set is tuned for pieces that arrive in roughly increasing order.  Sets
  built independently (e.g. one per shard of a long sequence) are combined
  with Set.Merge.  A Set is not safe for concurrent use.
*/
package coverage
