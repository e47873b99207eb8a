// Package logger provides structured logging for extkit tools using
// zerolog.
//
// Library packages never log. The extkit CLI builds a logger from its
// configuration and tags each command with a component name.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("zip")
//	log.Info("zipped", logger.Fields(logger.FieldPolicy, "pad", logger.FieldElements, 42))
package logger
