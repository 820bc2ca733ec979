package thumbnail

import (
	"os"
	"path/filepath"

	"github.com/xaionaro-go/displaythumbs/pkg/display"
)

const (
	fileNamePrefix = "display_"
	fileNameSuffix = ".jpg"
)

func DefaultOutputDir() string {
	return os.TempDir()
}

// OutputPath returns the path the thumbnail of the display is written to.
func OutputPath(dir string, displayID display.ID) string {
	return filepath.Join(dir, fileNamePrefix+displayID.String()+fileNameSuffix)
}
