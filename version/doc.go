// Package version reports the extkit build: the version, commit and build
// time set at compile time, plus the Go build info embedded by the
// toolchain.
//
//	go build -ldflags "-X github.com/kbukum/extkit/version.Version=1.0.0" ./cmd/extkit
package version
