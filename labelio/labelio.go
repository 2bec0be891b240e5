package labelio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/metastates/rle"
)

// Load parses whitespace-separated integer labels from r and adds shift to
// each of them.
//
// Errors:
//   - ErrSyntax   — wrapped with the 1-based token position and the token.
//   - ErrNoLabels — r holds no tokens.
//   - any read error from r.
func Load(r io.Reader, shift int) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var labels []int
	for sc.Scan() {
		tok := sc.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w %q at position %d", ErrSyntax, tok, len(labels)+1)
		}
		labels = append(labels, v+shift)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("labelio: read: %w", err)
	}
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	return labels, nil
}

// Save writes labels to w, one per line, each with shift added.
func Save(w io.Writer, labels []int, shift int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, v := range labels {
		buf = strconv.AppendInt(buf[:0], int64(v+shift), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("labelio: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("labelio: write: %w", err)
	}
	return nil
}

// WriteSegments writes segs as a tab-separated table with a header row.
// Labels are printed with shift added, like Save; ms uses three decimals.
func WriteSegments(w io.Writer, segs []rle.Segment[int], shift int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "start\tstop\tlabel\tsamples\tms")
	for _, s := range segs {
		fmt.Fprintf(bw, "%d\t%d\t%d\t%d\t%.3f\n", s.Start, s.Stop, s.Label+shift, s.Samples, s.Millis)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("labelio: write: %w", err)
	}
	return nil
}
