package hmm

// sequences splits data by lengths after checking every observation lies
// in 0..symbols-1.  nil lengths means one sequence.
func sequences(data, lengths []int, symbols int) ([][]int, error) {
	if len(data) == 0 {
		return nil, ErrEmptySequence
	}
	for _, o := range data {
		if o < 0 || o >= symbols {
			return nil, ErrSymbolRange
		}
	}
	if lengths == nil {
		return [][]int{data}, nil
	}

	out := make([][]int, 0, len(lengths))
	off := 0
	for _, n := range lengths {
		if n <= 0 || off+n > len(data) {
			return nil, ErrLengthMismatch
		}
		out = append(out, data[off:off+n])
		off += n
	}
	if off != len(data) {
		return nil, ErrLengthMismatch
	}
	return out, nil
}

func maxLen(seqs [][]int) int {
	n := 0
	for _, s := range seqs {
		n = max(n, len(s))
	}
	return n
}
