package factory

import (
	"github.com/mcoot/hackerclub/internal/storage/memory"
	"github.com/mcoot/hackerclub/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Registry private to this app, never the process-wide one
	MemoryRegistry *memory.Storage
}

// NewTestApp creates an App with its own empty registry and a silent logger
func NewTestApp() *TestApp {
	registry := memory.New()
	app := newWithDependencies(registry, testutil.NopLogger())

	return &TestApp{
		App:            app,
		MemoryRegistry: registry,
	}
}
