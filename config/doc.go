// Package config provides configuration loading for eafgen.
//
// It uses Viper to load configuration from a config.yml and environment
// variables, with godotenv picking up .env files. Command-line flags
// override loaded values in cmd/eafgen.
//
// # Usage
//
//	cfg, err := config.Load()
//
// Search order: ./cmd/eafgen/config.yml, ./config/config.yml, ./config.yml.
package config
