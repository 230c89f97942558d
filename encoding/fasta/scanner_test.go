// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fasta_test

import (
	"strings"
	"testing"

	"github.com/grailbio/mercover/encoding/fasta"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

type record struct {
	name, seq string
}

func scanAll(data string) ([]record, error) {
	var recs []record
	sc := fasta.NewScanner(strings.NewReader(data))
	for sc.Scan() {
		recs = append(recs, record{sc.Name(), sc.Seq()})
	}
	return recs, sc.Err()
}

func TestScanner(t *testing.T) {
	tests := []struct {
		data string
		want []record
	}{
		{"", nil},
		{"\n\n", nil},
		{">seq1\nACGTA\nCGTAC\nGT\n>seq2 A viral sequence\nACGT\n\nACGT\n",
			[]record{{"seq1", "ACGTACGTACGT"}, {"seq2", "ACGTACGT"}}},
		{">a\n>b\nAC", []record{{"a", ""}, {"b", "AC"}}},
		{"\n>chr1\nNNACGT\n", []record{{"chr1", "NNACGT"}}},
	}
	for _, test := range tests {
		got, err := scanAll(test.data)
		expect.NoError(t, err)
		expect.EQ(t, got, test.want, "data: %q", test.data)
	}
}

func TestScannerMalformed(t *testing.T) {
	recs, err := scanAll("ACGT\n>seq1\nACGT\n")
	expect.EQ(t, len(recs), 0)
	assert.HasSubstr(t, err.Error(), "malformed FASTA")
}
