// Package config loads the extkit CLI configuration.
//
// Values are layered with viper: built-in defaults, then an extkit.yml
// found in the working directory, ./config or the user config directory,
// then a .env file read with godotenv, then EXTKIT_ environment variables.
//
// # Usage
//
//	cfg, err := config.Load(config.WithConfigFile("extkit.yml"))
//	policy, err := cfg.Zip.ImbalancePolicy()
//
// Environment variables use underscore-separated paths:
// EXTKIT_ZIP_POLICY=pad, EXTKIT_TELEMETRY_ENABLED=true.
package config
