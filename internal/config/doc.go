// Package config provides configuration loading, merging and validation for
// the borrower search server and client.
//
// Configuration is assembled from several sources; for each field the first
// source that sets it wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
