package filter

// Version information
var (
	// Version is the current version of the filter
	Version = "0.1.0"

	// GitCommit is the git commit that was compiled
	// This will be filled in by the compiler
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	// This will be filled in by the compiler
	BuildDate = "unknown"
)
