package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/mosaicnetworks/supernode/src/common"
	"github.com/mosaicnetworks/supernode/src/crypto/keys"
)

// Default configuration values.
const (
	DefaultLogLevel = "debug"

	// DefaultCacheSize is the capacity of the signature verification cache.
	DefaultCacheSize = keys.SignatureCacheLimit

	DefaultMoniker = "supernode"
)

// Config contains all the configuration properties of a supernode client.
type Config struct {
	// LogLevel determines the chattiness of the log output.
	LogLevel string `mapstructure:"log"`

	// CacheSize is the max number of fingerprints retained by the signature
	// verification cache.
	CacheSize int `mapstructure:"cache-size"`

	// Moniker defines the friendly name of this client. It is used as the
	// logging prefix.
	Moniker string `mapstructure:"moniker"`

	logger *logrus.Logger
}

// NewDefaultConfig returns a config object with default values.
func NewDefaultConfig() *Config {
	config := &Config{
		LogLevel:  DefaultLogLevel,
		CacheSize: DefaultCacheSize,
		Moniker:   DefaultMoniker,
	}

	return config
}

// NewTestConfig returns a config object with default values and a special
// logger for debugging tests.
func NewTestConfig(t testing.TB) *Config {
	config := NewDefaultConfig()
	config.logger = common.NewTestLogger(t)
	return config
}

// Logger returns a formatted logrus Entry, with prefix set to the moniker.
func (c *Config) Logger() *logrus.Entry {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.Level = LogLevel(c.LogLevel)
		c.logger.Formatter = new(prefixed.TextFormatter)
	}
	return c.logger.WithField("prefix", c.Moniker)
}

// LogLevel parses a string into a Logrus log level.
func LogLevel(l string) logrus.Level {
	switch l {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.DebugLevel
	}
}
