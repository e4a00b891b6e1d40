// Package config provides configuration loading, merging, and validation
// facilities for flagport.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win):
//  1. Command-line flag overrides
//  2. Environment variables (a .env file in the working directory is loaded
//     into the process environment first)
//  3. Built-in defaults
//
// The main entry point is [GetConfig].
package config
