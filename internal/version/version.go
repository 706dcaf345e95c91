package version

import (
	"fmt"
	"runtime"
)

// Semantic version of the service.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// ServiceName identifies the service in logs and the liveness payload.
const ServiceName = "token-insight-backend"

// Version returns the semantic version string.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
}

// BuildInfo is the build metadata surfaced by the liveness route.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetBuildInfo returns the current build information.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Service:   ServiceName,
		Version:   Version(),
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
