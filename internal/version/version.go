package version

// Version is set at build time with -ldflags "-X github.com/alglobo/exgen/internal/version.Version=..."
var Version = "dev"
