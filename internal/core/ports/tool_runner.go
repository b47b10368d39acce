// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/multiapi/internal/core/domain"
)

// ToolRunner runs the external host tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=tool_runner.go -destination=mocks/mock_tool_runner.go -package=mocks
type ToolRunner interface {
	// Run executes the tool for the invocation and blocks until it exits.
	// A non-zero exit is returned as an error carrying the exit code.
	Run(ctx context.Context, command []string, inv domain.Invocation) error

	// HostVersion asks the tool for the version it runs as.
	HostVersion(ctx context.Context, command []string) (string, error)
}
