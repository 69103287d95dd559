// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (never overrides variables already in the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields left unset by every source receive defaults. The main entry point
// is [GetStructuredConfig].
package config
