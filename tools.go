//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq (service and handler mocks, see go:generate lines)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migration work; joinctl migrate covers the usual cases)
