// Package config provides configuration loading, merging, and validation
// facilities for the go-identity binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetServerConfig] for the identity server,
// [GetAdminConfig] for the admin tool and [GetClientConfig] for the API
// client. Missing secrets are reported as errors wrapping [ErrConfigMissing].
package config
