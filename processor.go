package bsieve

import (
	"bufio"
	"io"
)

const (
	// initialLineBuf is the initial scanner buffer size.
	initialLineBuf = 64 * 1024

	// maxLineBytes bounds a single input line. A longer line aborts the
	// run with bufio.ErrTooLong instead of being split mid-line.
	maxLineBytes = 16 * 1024 * 1024
)

// Options configures a Processor.
type Options struct {
	// Invert flips the forwarding decision: only lines already present
	// in the filter are printed. Unseen lines are still inserted
	// (subject to Limit) so that later duplicates within the same
	// stream are recognized.
	Invert bool

	// Limit caps the number of successful insertions, measured against
	// the filter's total insertion count so a limit carries across runs
	// when the filter is loaded from a backing file. Once reached, lines
	// are still read and forwarded or suppressed per the membership
	// test, but no longer inserted. 0 means unlimited.
	Limit uint64
}

// Processor streams lines through a bloom filter, deciding per line whether
// to forward or suppress it. It exclusively owns its filter for the
// duration of a run; output order always equals input order.
type Processor struct {
	filter   *Filter
	opts     Options
	inserted uint64
}

// NewProcessor creates a processor that owns f for the duration of a run.
func NewProcessor(f *Filter, opts Options) *Processor {
	return &Processor{filter: f, opts: opts}
}

// Filter returns the processor's filter, e.g. for persisting after a run.
func (p *Processor) Filter() *Filter {
	return p.filter
}

// Inserted returns the number of insertions performed during Run, not
// counting insertions from previous runs of a loaded filter.
func (p *Processor) Inserted() uint64 {
	return p.inserted
}

// Run reads newline-terminated lines from r and writes the selected subset
// to w, each followed by a newline, in input order.
//
// Normal mode: a line not in the filter is inserted (unless the insertion
// limit is reached) and forwarded; a line already in the filter is
// suppressed. Invert mode: a line is forwarded only if it is already in
// the filter.
//
// Lines are treated as raw bytes; no text encoding is assumed. Read and
// write failures abort the run with the underlying error.
func (p *Processor) Run(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, initialLineBuf), maxLineBytes)

	out := bufio.NewWriter(w)

	for sc.Scan() {
		line := sc.Bytes()

		// Hash once per line; test and insert reuse the digests.
		h1, h2 := baseHashes(line)
		seen := p.filter.testWithHash(h1, h2)

		if !seen && (p.opts.Limit == 0 || p.filter.Count() < p.opts.Limit) {
			p.filter.addWithHash(h1, h2)
			p.inserted++
		}

		// Normal mode prints first-time lines; invert mode prints the
		// lines already known to the filter.
		if seen == p.opts.Invert {
			if err := writeLine(out, line); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	return out.Flush()
}

func writeLine(out *bufio.Writer, line []byte) error {
	if _, err := out.Write(line); err != nil {
		return err
	}
	return out.WriteByte('\n')
}
