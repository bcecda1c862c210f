package logging

import "github.com/google/uuid"

// Scope derives a child logger carrying a fresh call-correlation id and a
// component label. Every pcg entry point (BuildFromAutomata, Minimize,
// FindOrderingConservative, ConstructRegex, FailedGraph, DisconnectLocs,
// GeneratePNG) calls this once on entry rather than minting its own uuid,
// so a call's whole log trail shares one call_id regardless of how many
// internal helpers it fans out to.
func Scope(logger Logger, component string) Logger {
	if logger == nil {
		logger = NewNopLogger()
	}
	return logger.With(CallID(uuid.New().String()), Component(component))
}
