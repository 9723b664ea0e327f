package version

// AppVersion is the brewctl release version. Overridden at build time via
// -ldflags "-X brewctl/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
