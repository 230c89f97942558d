// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// maxLineLength bounds a single FASTA line; sequences may be far longer when
// split across lines.
const maxLineLength = 1024 * 1024 * 300 // 300 MB

// Scanner reads FASTA records one at a time, so that only a single sequence
// is held in memory.  Typical use:
//
//   sc := fasta.NewScanner(r)
//   for sc.Scan() {
//     process(sc.Name(), sc.Seq())
//   }
//   if err := sc.Err(); err != nil { ... }
type Scanner struct {
	lines *bufio.Scanner
	// pendingName is the header line that ended the previous record.
	pendingName string
	havePending bool
	name        string
	seq         strings.Builder
	err         error
	done        bool
}

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(nil, maxLineLength)
	return &Scanner{lines: lines}
}

// headerName returns the sequence name in a '>' line: the text up to the first
// space.
func headerName(line string) string {
	return strings.Split(line[1:], " ")[0]
}

// Scan advances to the next record.  It returns false at the end of input or
// on error.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	s.seq.Reset()
	if s.havePending {
		s.name = s.pendingName
		s.havePending = false
	} else {
		// Looking for the first header.
		s.name = ""
		for {
			if !s.lines.Scan() {
				s.finish()
				return false
			}
			line := s.lines.Text()
			if len(line) == 0 {
				continue
			}
			if line[0] != '>' {
				s.err = errors.Errorf("malformed FASTA file: sequence data before the first header")
				s.done = true
				return false
			}
			s.name = headerName(line)
			break
		}
	}
	for s.lines.Scan() {
		line := s.lines.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			s.pendingName = headerName(line)
			s.havePending = true
			return true
		}
		s.seq.WriteString(line)
	}
	s.finish()
	return s.err == nil
}

func (s *Scanner) finish() {
	s.done = true
	if err := s.lines.Err(); err != nil {
		s.err = errors.Wrap(err, "couldn't read FASTA data")
	}
}

// Name returns the name of the current record.
func (s *Scanner) Name() string { return s.name }

// Seq returns the sequence of the current record, with line breaks removed.
func (s *Scanner) Seq() string { return s.seq.String() }

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error { return s.err }
