package thumbnail

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/datacounter"
	"github.com/xaionaro-go/displaythumbs/pkg/display"
)

// OpenFunc opens the destination a thumbnail is encoded into.
type OpenFunc func(path string) (io.WriteCloser, error)

// RemoveFunc deletes a partially written destination.
type RemoveFunc func(path string) error

var _ OpenFunc = OpenFile

func OpenFile(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

func (t *Thumbnailer) writeJPEG(
	ctx context.Context,
	displayID display.ID,
	path string,
	img image.Image,
) (uint64, error) {
	f, err := t.open()(path)
	if err != nil {
		return 0, EncodeDestinationError{DisplayID: displayID, Path: path, Err: err}
	}

	counter := datacounter.NewWriterCounter(f)
	var result *multierror.Error
	if err := jpeg.Encode(counter, img, &jpeg.Options{Quality: t.jpegQuality()}); err != nil {
		result = multierror.Append(result, fmt.Errorf("unable to encode the image to JPEG: %w", err))
	}
	if err := f.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("unable to close the file: %w", err))
	}
	if err := result.ErrorOrNil(); err != nil {
		t.removePartial(ctx, path)
		return 0, EncodeFinalizeError{DisplayID: displayID, Path: path, Err: err}
	}

	return counter.Count(), nil
}

func (t *Thumbnailer) removePartial(
	ctx context.Context,
	path string,
) {
	if t.KeepPartialFiles {
		logger.Debugf(ctx, "keeping the partially written file '%s'", path)
		return
	}
	remove := t.Remove
	if remove == nil {
		remove = os.Remove
	}
	if err := remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warnf(ctx, "unable to remove the partially written file '%s': %v", path, err)
	}
}
