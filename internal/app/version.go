package app

import "fmt"

const appName = "flashcards-backend"

// Build metadata, overridden with
// -ldflags "-X github.com/heartmarshall/flashcards-backend/internal/app.Version=1.0.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for logs and /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
