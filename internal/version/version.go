// internal/version/version.go
package version

// Version is stamped manually per release.
const Version = "1.0.0"
