// Package config loads processor configuration with Viper.
//
// Files are YAML (or any format Viper reads). A .env file, when present, is
// loaded into the environment first; then PROCESSOR_-prefixed variables
// override file values, with dots in keys written as underscores
// (PROCESSOR_LOGGING_LEVEL=debug).
//
//	cfg, err := config.Load("processor", config.WithConfigFile("chain.yml"))
//
// Load applies defaults and validates; LoadConfig only unmarshals into any
// struct for callers with their own config shape.
package config
