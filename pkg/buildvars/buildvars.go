package buildvars

import (
	"strconv"
	"time"
)

// Set through -ldflags "-X github.com/xaionaro-go/displaythumbs/pkg/buildvars.Version=...".
var (
	GitCommit       string
	Version         string
	BuildDateString string
	BuildDate       *time.Time
)

func init() {
	unixTS, err := strconv.ParseInt(BuildDateString, 10, 64)
	if err == nil {
		BuildDate = ptr(time.Unix(unixTS, 0))
	}
}

func ptr[T any](in T) *T {
	return &in
}
