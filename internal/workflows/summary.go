package workflows

// Outcome records the result of transforming one file.
type Outcome struct {
	// Path is the input file.
	Path string

	// Output is the produced file path, empty on failure.
	Output string

	// Err is the per-file failure, nil on success.
	Err error
}

// Summary aggregates per-file outcomes for one batch. When the batch runs
// to completion, Succeeded+Failed equals the selection size.
type Summary struct {
	Outcomes  []Outcome
	Succeeded int
	Failed    int

	// Aborted is set when the batch stopped early on context cancellation.
	// Files not yet started are absent from Outcomes.
	Aborted bool
}

func (s *Summary) record(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	if o.Err != nil {
		s.Failed++
	} else {
		s.Succeeded++
	}
}
