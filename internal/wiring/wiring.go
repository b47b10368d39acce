// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/multiapi/internal/adapters/cas"
	_ "go.trai.ch/multiapi/internal/adapters/config"
	_ "go.trai.ch/multiapi/internal/adapters/fs"
	_ "go.trai.ch/multiapi/internal/adapters/hostmodel"
	_ "go.trai.ch/multiapi/internal/adapters/logger"
	_ "go.trai.ch/multiapi/internal/adapters/shell"
	_ "go.trai.ch/multiapi/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/multiapi/internal/app"
	_ "go.trai.ch/multiapi/internal/engine/classpath"
)
