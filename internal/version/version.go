package version

// Version is set at build time with
// -ldflags "-X github.com/bnema/wellbeing-cli/internal/version.Version=v1.2.3".
var Version = "dev"
