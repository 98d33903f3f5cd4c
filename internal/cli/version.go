package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/spf13/cobra"

	"github.com/cyclewise/cyclewise/internal/output"
)

const (
	devVersionString = "dev"
	unknownString    = "unknown"
)

// Build information set via ldflags
//
//nolint:gochecknoglobals // Build variables are set via ldflags during compilation
var (
	versionMu sync.RWMutex
	version   = devVersionString
	commit    = unknownString
	buildDate = unknownString
)

// VersionInfo contains version information
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// SetVersionInfo allows setting version information programmatically
// This is useful for testing or when not using ldflags (thread-safe)
func SetVersionInfo(v, c, d string) {
	versionMu.Lock()
	defer versionMu.Unlock()
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
}

// getVersionWithFallback falls back to module build info when ldflags
// left the version at its dev default.
func getVersionWithFallback() string {
	versionMu.RLock()
	v := version
	versionMu.RUnlock()

	if v != devVersionString {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return v
}

func currentVersionInfo() VersionInfo {
	versionMu.RLock()
	c, d := commit, buildDate
	versionMu.RUnlock()

	return VersionInfo{
		Version:   getVersionWithFallback(),
		Commit:    c,
		BuildDate: d,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

func createVersionCmd(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := currentVersionInfo()

			if flags.JSONOutput {
				encoder := json.NewEncoder(output.Stdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(info)
			}

			output.Info(fmt.Sprintf("cyclewise %s", info.Version))
			output.Info(fmt.Sprintf("Commit:     %s", info.Commit))
			output.Info(fmt.Sprintf("Build Date: %s", info.BuildDate))
			output.Info(fmt.Sprintf("Go Version: %s", info.GoVersion))
			output.Info(fmt.Sprintf("Platform:   %s/%s", info.OS, info.Arch))
			return nil
		},
	}
}
