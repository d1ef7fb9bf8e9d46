// Package logging provides subsystem-tagged structured logging for depmanager.
//
// It is a thin layer over Go's slog package: a single process-wide text
// handler is configured once at startup, and every log line carries the name
// of the subsystem that emitted it.
//
// # Log Levels
//   - **Debug**: node creation, rejected edges, file watcher events
//   - **Info**: loaded specifications, resolution summaries
//   - **Warn**: unresolved elements, recoverable watcher problems
//   - **Error**: failures that abort a command
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Config", "Loaded specification from %s", path)
//	logging.Debug("Dependency", "Created node %v", element)
//	logging.Error("Resolve", err, "Failed to build dependency graph")
//
// Calls made before InitForCLI are discarded, which keeps library packages
// and their tests quiet unless a command enables output.
//
// # Subsystems
//
//   - **Dependency**: graph construction
//   - **Config**: specification loading
//   - **Reconciler**: specification file watching
//   - **Resolve**: the resolve command
package logging
