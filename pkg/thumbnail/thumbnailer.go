package thumbnail

import (
	"context"
	"errors"
	"image"
	"image/jpeg"
	"os"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/displaythumbs/pkg/display"
	"github.com/xaionaro-go/displaythumbs/pkg/observability"
	"golang.org/x/sync/errgroup"
)

const DefaultJPEGQuality = jpeg.DefaultQuality

type DisplayLister interface {
	ListDisplays(ctx context.Context) ([]display.ID, error)
}

type DisplayCapturer interface {
	CaptureDisplay(ctx context.Context, displayID display.ID) (*image.RGBA, error)
}

// Backend is the host windowing system.
type Backend interface {
	DisplayLister
	DisplayCapturer
}

// Thumbnailer writes one JPEG thumbnail per active display.
type Thumbnailer struct {
	Backend  Backend
	Reporter Reporter

	OutputDir        string
	JPEGQuality      int
	Jobs             int
	KeepPartialFiles bool

	Open   OpenFunc
	Remove RemoveFunc
}

func New(
	backend Backend,
	reporter Reporter,
) *Thumbnailer {
	return &Thumbnailer{
		Backend:     backend,
		Reporter:    reporter,
		OutputDir:   DefaultOutputDir(),
		JPEGQuality: DefaultJPEGQuality,
		Jobs:        1,
		Open:        OpenFile,
		Remove:      os.Remove,
	}
}

// Run enumerates the displays and processes each of them.
//
// Only an enumeration failure (or a cancelled context) is returned as an
// error. Per-display failures are reported and collected into
// Result.Failures, they do not stop the processing of other displays.
func (t *Thumbnailer) Run(ctx context.Context) (*Result, error) {
	reporter := t.reporter()
	displayIDs, err := t.Backend.ListDisplays(ctx)
	if err != nil {
		err = EnumerationError{Err: err}
		reporter.EnumerationFailed(err)
		return nil, err
	}
	logger.Debugf(ctx, "processing %d displays: %v", len(displayIDs), displayIDs)

	outputs := make([]*Output, len(displayIDs))
	errs := make([]error, len(displayIDs))
	process := func(idx int) {
		output, err := t.handleDisplay(ctx, reporter, displayIDs[idx])
		if err != nil {
			errs[idx] = err
			return
		}
		outputs[idx] = &output
	}

	jobs := t.Jobs
	if jobs <= 1 {
		for idx := range displayIDs {
			if err := ctx.Err(); err != nil {
				return newResult(displayIDs, outputs, errs), err
			}
			process(idx)
		}
		return newResult(displayIDs, outputs, errs), nil
	}

	logger.Debugf(ctx, "processing the displays using up to %d jobs", jobs)
	var g errgroup.Group
	g.SetLimit(jobs)
	for idx := range displayIDs {
		idx := idx
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			process(idx)
			return nil
		})
	}
	err = g.Wait()
	return newResult(displayIDs, outputs, errs), err
}

func (t *Thumbnailer) handleDisplay(
	ctx context.Context,
	reporter Reporter,
	displayID display.ID,
) (Output, error) {
	output, err := t.ProcessDisplay(ctx, displayID)
	if err != nil {
		logger.Debugf(ctx, "display %s failed: %v", displayID, err)
		reporter.DisplayFailed(displayID, err)
		return Output{}, err
	}
	reporter.DisplaySaved(output)
	return output, nil
}

// ProcessDisplay captures the display and writes its thumbnail to OutputPath.
//
// The returned error is one of CaptureError, EncodeDestinationError or EncodeFinalizeError.
func (t *Thumbnailer) ProcessDisplay(
	ctx context.Context,
	displayID display.ID,
) (Output, error) {
	logger.Debugf(ctx, "capturing display %s", displayID)
	var img *image.RGBA
	err := observability.CallSafe(ctx, func() error {
		var err error
		img, err = t.Backend.CaptureDisplay(ctx, displayID)
		return err
	})
	if err == nil && img == nil {
		err = errors.New("the capture returned no image")
	}
	if err != nil {
		return Output{}, CaptureError{DisplayID: displayID, Err: err}
	}

	path := OutputPath(t.outputDir(), displayID)
	logger.Debugf(ctx, "writing the %v thumbnail of display %s to '%s'", img.Bounds().Size(), displayID, path)
	size, err := t.writeJPEG(ctx, displayID, path, img)
	if err != nil {
		return Output{}, err
	}

	return Output{
		DisplayID: displayID,
		Path:      path,
		Size:      size,
	}, nil
}

var newDefaultReporter = func() Reporter {
	return NewConsoleReporter(os.Stdout, os.Stderr)
}

func (t *Thumbnailer) reporter() Reporter {
	if t.Reporter == nil {
		return newDefaultReporter()
	}
	return t.Reporter
}

func (t *Thumbnailer) outputDir() string {
	if t.OutputDir == "" {
		return DefaultOutputDir()
	}
	return t.OutputDir
}

func (t *Thumbnailer) jpegQuality() int {
	if t.JPEGQuality <= 0 {
		return DefaultJPEGQuality
	}
	return t.JPEGQuality
}

func (t *Thumbnailer) open() OpenFunc {
	if t.Open == nil {
		return OpenFile
	}
	return t.Open
}
