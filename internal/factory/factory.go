package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/hackerclub/internal/services/membership"
	"github.com/mcoot/hackerclub/internal/storage"
	"github.com/mcoot/hackerclub/internal/storage/memory"
)

// Registry scope constants
const (
	RegistryScopeProcess  = "process"
	RegistryScopeIsolated = "isolated"
)

// App contains all wired application components
type App struct {
	// Storage
	Registry storage.HandleRegistry

	// Services
	MembershipService *membership.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// RegistryScope selects which handle registry to use ("process" or "isolated")
	// "process" shares the process-wide registry; "isolated" creates a private one.
	// If empty, defaults to "process"
	RegistryScope string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var registry storage.HandleRegistry
	scope := cfg.RegistryScope
	if scope == "" {
		scope = RegistryScopeProcess
	}

	switch scope {
	case RegistryScopeProcess:
		registry = memory.Default()
	case RegistryScopeIsolated:
		registry = memory.New()
	default:
		return nil, fmt.Errorf("invalid RegistryScope %q: must be 'process' or 'isolated'", scope)
	}

	return newWithDependencies(registry, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(registry storage.HandleRegistry, logger *slog.Logger) *App {
	return &App{
		Registry:          registry,
		MembershipService: membership.New(registry, logger),
	}
}
