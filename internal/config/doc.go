// Package config provides configuration loading, merging, and validation
// facilities for the scanalyzer-link client core.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which loads the merged
// [StructuredConfig] and maps it to the validated runtime view used to wire
// the connection client, the request adapter, and the offline replay worker.
package config
