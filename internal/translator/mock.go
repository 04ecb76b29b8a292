package translator

import "context"

// Mock is an in-process Batch for tests. Without a Fn it echoes every
// input sequence back as its own hypothesis.
type Mock struct {
	Fn func(seqs [][]string, opts Options) ([][]string, error)

	Calls    int
	LastSeqs [][]string
	LastOpts Options
}

func (m *Mock) TranslateBatch(ctx context.Context, seqs [][]string, opts Options) ([][]string, error) {
	m.Calls++
	m.LastSeqs = seqs
	m.LastOpts = opts
	if m.Fn != nil {
		return m.Fn(seqs, opts)
	}
	hyps := make([][]string, len(seqs))
	for i, seq := range seqs {
		hyps[i] = append([]string(nil), seq...)
	}
	return hyps, nil
}

func (m *Mock) IsAvailable(ctx context.Context) error {
	return nil
}
