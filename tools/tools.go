//go:build tools
// +build tools

// Package tools documents development tool dependencies. They are
// installed globally via `go install` rather than tracked as runtime
// dependencies.
package tools

// Development tools:
//
// mockgen - generates the repository mocks in internal/mocks
//   Install: go install go.uber.org/mock/mockgen@v0.6.0
//   Regenerate: go generate ./internal/mocks
//
// Air - live reload during development
//   Install: go install github.com/air-verse/air@v1.63.0
