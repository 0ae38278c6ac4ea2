// Package logging centralizes logger construction for the cover strategies.
// Covers log nothing unless a caller injects a logger, so the default is a
// nop zap logger rather than nil checks at every call site.
package logging

import "go.uber.org/zap"

// Default returns the logger used when none is injected.
func Default() *zap.Logger { return zap.NewNop() }

// Development returns a human-readable console logger for tests and
// debugging sessions, falling back to the nop logger if construction fails.
func Development() *zap.Logger {
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
