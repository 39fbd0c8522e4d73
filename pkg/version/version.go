// Package version reports the build of the topology tools.
package version

// Set with -ldflags "-X github.com/carverauto/topology-backend/pkg/version.version=..."
//
//nolint:gochecknoglobals // ldflags injection
var (
	version = "dev"
	buildID = "dev"
)

// GetFullVersion returns the version with its build ID.
func GetFullVersion() string {
	return version + " (build: " + buildID + ")"
}
