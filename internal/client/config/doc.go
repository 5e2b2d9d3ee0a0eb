// Package config loads runtime configuration for the admin settings CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-t int      request timeout (seconds)
//	-e string   email offered at the login prompt
//
// # JSON schema
//
// Keys missing from the file keep their previous values. The timeout uses
// timex.Duration, so it can be a string like "10s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "10s",
//	  "email": "admin@example.com"
//	}
package config
