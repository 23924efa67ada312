// Package logger provides structured logging for eafgen using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.WithComponent("eaf-builder")
//	log.Info("document assembled", logger.Fields(logger.FieldSlots, 5))
package logger
