package commands

import (
	"encoding/json"
	"io"
	"runtime/debug"
	"strings"
	"time"

	"github.com/xaionaro-go/displaythumbs/pkg/buildvars"
)

const programName = "displaythumbs"

type buildInfo struct {
	Program   string
	Version   string            `json:",omitempty"`
	GitCommit string            `json:",omitempty"`
	BuildDate string            `json:",omitempty"`
	GoVersion string            `json:",omitempty"`
	Module    string            `json:",omitempty"`
	VCS       map[string]string `json:",omitempty"`
}

// getBuildInfo prefers the values injected through -ldflags and falls back
// to what the Go toolchain embedded into the binary.
func getBuildInfo() buildInfo {
	result := buildInfo{
		Program:   programName,
		Version:   buildvars.Version,
		GitCommit: buildvars.GitCommit,
		BuildDate: buildvars.BuildDateString,
	}
	if buildvars.BuildDate != nil {
		result.BuildDate = buildvars.BuildDate.UTC().Format(time.RFC3339)
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return result
	}

	result.GoVersion = bi.GoVersion
	result.Module = bi.Main.Path
	if result.Version == "" && bi.Main.Version != "(devel)" {
		result.Version = bi.Main.Version
	}
	for _, setting := range bi.Settings {
		key, ok := strings.CutPrefix(setting.Key, "vcs.")
		if !ok {
			continue
		}
		if result.VCS == nil {
			result.VCS = map[string]string{}
		}
		result.VCS[key] = setting.Value
	}
	if result.GitCommit == "" {
		result.GitCommit = result.VCS["revision"]
	}
	return result
}

func printBuildInfo(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", " ")
	return enc.Encode(getBuildInfo())
}
