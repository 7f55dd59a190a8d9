// Package log provides the structured logging facade used by the data-eater
// CLI.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Internally it is backed by the standard
// library slog via a bridge handler that routes records through the
// formatter/output pipeline, so slog-aware libraries and our own code produce
// consistent output.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.WithComponent("generate")
//	l.Info("generated", log.Int("count", 10))
//
// The core library packages never log; they return errors and leave
// reporting to the caller.
package log
