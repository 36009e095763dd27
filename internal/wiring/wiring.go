// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.kinematix.dev/extbuild/internal/adapters/config"
	_ "go.kinematix.dev/extbuild/internal/adapters/logger"
	_ "go.kinematix.dev/extbuild/internal/adapters/shell"
	_ "go.kinematix.dev/extbuild/internal/adapters/state"
	_ "go.kinematix.dev/extbuild/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.kinematix.dev/extbuild/internal/app"
	_ "go.kinematix.dev/extbuild/internal/engine/driver"
	_ "go.kinematix.dev/extbuild/internal/engine/resolver"
)
