package thumbnail

import (
	"errors"

	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/displaythumbs/pkg/display"
)

var ErrNothingWritten = errors.New("no thumbnails were written")

// Output describes one thumbnail written to disk.
type Output struct {
	DisplayID display.ID
	Path      string
	Size      uint64
}

// Result is the outcome of a run in which the displays were enumerated successfully.
type Result struct {
	// DisplayIDs lists the enumerated displays, in the order the OS reported them.
	DisplayIDs []display.ID

	// Outputs lists the written thumbnails, in the same order as DisplayIDs.
	Outputs []Output

	// Failures aggregates the per-display errors; nil if there were none.
	Failures *multierror.Error
}

func newResult(
	displayIDs []display.ID,
	outputs []*Output,
	errs []error,
) *Result {
	result := &Result{
		DisplayIDs: displayIDs,
	}
	for idx := range displayIDs {
		if output := outputs[idx]; output != nil {
			result.Outputs = append(result.Outputs, *output)
		}
		if err := errs[idx]; err != nil {
			result.Failures = multierror.Append(result.Failures, err)
		}
	}
	return result
}

func (r *Result) FailureCount() int {
	if r == nil || r.Failures == nil {
		return 0
	}
	return len(r.Failures.Errors)
}

// ErrIfNothingWritten returns ErrNothingWritten (joined with the per-display
// failures) if not a single thumbnail was written.
func (r *Result) ErrIfNothingWritten() error {
	if r != nil && len(r.Outputs) > 0 {
		return nil
	}
	if r == nil || r.Failures == nil {
		return ErrNothingWritten
	}
	return multierror.Append(ErrNothingWritten, r.Failures.Errors...)
}
