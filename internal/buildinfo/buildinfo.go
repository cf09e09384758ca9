package buildinfo

import (
	"runtime/debug"
)

var BuildInfo *debug.BuildInfo

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}
	}
	BuildInfo = info
}

// Version returns the main module version, suffixed with the VCS revision when known.
func Version() string {
	v := BuildInfo.Main.Version
	if v == "" {
		v = "(devel)"
	}

	for _, s := range BuildInfo.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			rev := s.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
			return v + "-" + rev
		}
	}
	return v
}
