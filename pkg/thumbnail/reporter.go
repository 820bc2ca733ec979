package thumbnail

import (
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/xaionaro-go/displaythumbs/pkg/display"
)

// Reporter receives one event per outcome of a run.
//
// Implementations must be safe for concurrent use.
type Reporter interface {
	EnumerationFailed(err error)
	DisplayFailed(displayID display.ID, err error)
	DisplaySaved(output Output)
}

// ConsoleReporter prints one line per event: saved thumbnails to Writer,
// failures to ErrWriter.
type ConsoleReporter struct {
	Writer    io.Writer
	ErrWriter io.Writer
	locker    sync.Mutex
}

var _ Reporter = (*ConsoleReporter)(nil)

func NewConsoleReporter(w, errW io.Writer) *ConsoleReporter {
	return &ConsoleReporter{Writer: w, ErrWriter: errW}
}

func (r *ConsoleReporter) EnumerationFailed(err error) {
	r.printLine(r.errWriter(), "error: %v", err)
}

// DisplayFailed prints the error as is: every per-display error already names the display and the failed stage.
func (r *ConsoleReporter) DisplayFailed(_ display.ID, err error) {
	r.printLine(r.errWriter(), "error: %v", err)
}

func (r *ConsoleReporter) DisplaySaved(output Output) {
	r.printLine(
		r.Writer,
		"saved the thumbnail of display %s to '%s' (%s)",
		output.DisplayID, output.Path, humanize.Bytes(output.Size),
	)
}

// printLine writes the whole line in a single call while holding the lock.
func (r *ConsoleReporter) printLine(w io.Writer, format string, args ...any) {
	line := fmt.Sprintf(format, args...) + "\n"
	r.locker.Lock()
	defer r.locker.Unlock()
	_, _ = io.WriteString(w, line)
}

func (r *ConsoleReporter) errWriter() io.Writer {
	if r.ErrWriter == nil {
		return r.Writer
	}
	return r.ErrWriter
}
