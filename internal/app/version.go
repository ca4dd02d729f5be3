package app

// version is set at build time via -ldflags "-X .../internal/app.version=...".
var version = "dev"

// BuildVersion returns the application version stamped at build time.
func BuildVersion() string {
	return version
}
