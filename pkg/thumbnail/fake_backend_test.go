package thumbnail

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/xaionaro-go/displaythumbs/pkg/display"
)

type fakeBackend struct {
	IDs         []display.ID
	ListErr     error
	CaptureErrs map[display.ID]error
	NilImages   map[display.ID]bool
	Panics      map[display.ID]bool

	locker   sync.Mutex
	listed   int
	captured []display.ID
}

var _ Backend = (*fakeBackend)(nil)

func (b *fakeBackend) ListDisplays(context.Context) ([]display.ID, error) {
	b.locker.Lock()
	defer b.locker.Unlock()
	b.listed++
	if b.ListErr != nil {
		return nil, b.ListErr
	}
	return append([]display.ID(nil), b.IDs...), nil
}

func (b *fakeBackend) CaptureDisplay(_ context.Context, displayID display.ID) (*image.RGBA, error) {
	b.locker.Lock()
	b.captured = append(b.captured, displayID)
	err := b.CaptureErrs[displayID]
	isNil := b.NilImages[displayID]
	doPanic := b.Panics[displayID]
	b.locker.Unlock()

	if doPanic {
		panic(fmt.Sprintf("capture of display %s crashed", displayID))
	}

	if err != nil || isNil {
		return nil, err
	}
	return syntheticFrame(displayID), nil
}

func (b *fakeBackend) Captured() []display.ID {
	b.locker.Lock()
	defer b.locker.Unlock()
	return append([]display.ID(nil), b.captured...)
}

const (
	frameWidth  = 64
	frameHeight = 48
)

func syntheticFrame(displayID display.ID) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frameWidth, frameHeight))
	for y := 0; y < frameHeight; y++ {
		for x := 0; x < frameWidth; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(displayID), G: uint8(x * 4), B: uint8(y * 5), A: 255})
		}
	}
	return img
}

type recordingReporter struct {
	locker            sync.Mutex
	EnumerationErrors []error
	Failed            []display.ID
	Saved             []Output
}

var _ Reporter = (*recordingReporter)(nil)

func (r *recordingReporter) EnumerationFailed(err error) {
	r.locker.Lock()
	defer r.locker.Unlock()
	r.EnumerationErrors = append(r.EnumerationErrors, err)
}

func (r *recordingReporter) DisplayFailed(displayID display.ID, _ error) {
	r.locker.Lock()
	defer r.locker.Unlock()
	r.Failed = append(r.Failed, displayID)
}

func (r *recordingReporter) DisplaySaved(output Output) {
	r.locker.Lock()
	defer r.locker.Unlock()
	r.Saved = append(r.Saved, output)
}
