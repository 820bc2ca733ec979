package thumbnail

import (
	"fmt"

	"github.com/xaionaro-go/displaythumbs/pkg/display"
)

// EnumerationError means the list of displays could not be obtained at all.
// It is the only error that aborts a run.
type EnumerationError struct {
	Err error
}

func (e EnumerationError) Error() string {
	return fmt.Sprintf("unable to enumerate the displays: %v", e.Err)
}

func (e EnumerationError) Unwrap() error {
	return e.Err
}

// CaptureError means the OS declined to produce an image of the display.
type CaptureError struct {
	DisplayID display.ID
	Err       error
}

func (e CaptureError) Error() string {
	return fmt.Sprintf("unable to capture display %s: %v", e.DisplayID, e.Err)
}

func (e CaptureError) Unwrap() error {
	return e.Err
}

// EncodeDestinationError means the output file could not be created.
type EncodeDestinationError struct {
	DisplayID display.ID
	Path      string
	Err       error
}

func (e EncodeDestinationError) Error() string {
	return fmt.Sprintf("unable to create destination '%s' for display %s: %v", e.Path, e.DisplayID, e.Err)
}

func (e EncodeDestinationError) Unwrap() error {
	return e.Err
}

// EncodeFinalizeError means encoding or flushing the JPEG to the destination failed.
type EncodeFinalizeError struct {
	DisplayID display.ID
	Path      string
	Err       error
}

func (e EncodeFinalizeError) Error() string {
	return fmt.Sprintf("unable to finalize '%s' for display %s: %v", e.Path, e.DisplayID, e.Err)
}

func (e EncodeFinalizeError) Unwrap() error {
	return e.Err
}
