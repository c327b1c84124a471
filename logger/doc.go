// Package logger provides structured logging using zerolog.
//
// It supports JSON and console output, level configuration and
// component-scoped loggers with structured fields. The seq package itself
// never logs; logging enters a pipeline through observability.Trace and the
// post tooling.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.New(&cfg.Logging, "nextpost").WithComponent("posts")
//	log.Info("scanned directory", logger.Fields("dir", dir, "entries", n))
//
// Packages without a logger of their own use the global one through
// WithComponent; the nextpost command installs it with SetGlobalLogger.
package logger
