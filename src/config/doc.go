// Package config defines the configuration for a supernode client.
//
// Regardless of how the client is embedded, it uses the Config object defined
// in this package to store and forward configuration options: the log level,
// the logging prefix, and the size of the signature verification cache.
package config
