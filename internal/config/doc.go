// Package config provides configuration loading, merging, and validation
// facilities for the envscope tool itself.
//
// Tool settings are assembled from multiple sources in the following priority
// order (an earlier source wins for any field it sets):
//  1. Environment variables (ENVSCOPE_*)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The tool's own variables live under the ENVSCOPE_ prefix so they can never
// collide with the application keys the tool validates.
//
// The main entry point is [GetStructuredConfig].
package config
