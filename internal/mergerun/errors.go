package mergerun

import "errors"

var (
	// ErrInputNotFound marks an input path that does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrSameFile marks an input path that resolves to the output path.
	ErrSameFile = errors.New("input is the output file")
	// ErrNoOutput is returned when Options.Output is empty.
	ErrNoOutput = errors.New("output path is required")
)

// SkippedInput records an input that was left out of the merge.
type SkippedInput struct {
	Path   string
	Reason error
}

// Kind returns a short machine-readable label for the skip reason.
func (s SkippedInput) Kind() string {
	switch {
	case errors.Is(s.Reason, ErrInputNotFound):
		return "not_found"
	case errors.Is(s.Reason, ErrSameFile):
		return "same_as_output"
	default:
		return "other"
	}
}
