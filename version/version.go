package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Set by -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Name is the program name reported in version output.
const Name = "dirbench"

// Info is the build metadata embedded in benchmark reports.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// GetVersion returns the linked version, the module version from build
// info, or "development".
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "development"
}

// GetInfo collects version, commit, build date and toolchain.
func GetInfo() Info {
	info := Info{Version: GetVersion(), Commit: Commit, Date: Date, GoVersion: "unknown"}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" || info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" || info.Date == "" {
				info.Date = s.Value
			}
		}
	}
	return info
}

// String formats info as "v1.2.3 (abc1234, built 2024-01-01T00:00:00Z)".
func (i Info) String() string {
	if i.Commit == "unknown" || len(i.Commit) <= 7 {
		return i.Version
	}
	if i.Date != "unknown" {
		return fmt.Sprintf("%s (%s, built %s)", i.Version, i.Commit[:7], i.Date)
	}
	return fmt.Sprintf("%s (%s)", i.Version, i.Commit[:7])
}

// GetFullVersion returns GetInfo().String().
func GetFullVersion() string {
	return GetInfo().String()
}

// Fprint writes the full version report to w.
func Fprint(w io.Writer) {
	info := GetInfo()
	fmt.Fprintf(w, "%s version %s\n", Name, info)
	fmt.Fprintf(w, "Commit: %s\n", info.Commit)
	fmt.Fprintf(w, "Build Date: %s\n", info.Date)
	fmt.Fprintf(w, "Go: %s\n", info.GoVersion)
}
