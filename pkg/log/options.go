package log

import (
	"fmt"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// Options ...
type Options struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		Level:  "info",
		Format: "json",
	}
}

// Validate ...
func (o *Options) Validate() error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(o.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.Level, err)
	}
	if o.Format != "json" && o.Format != "console" {
		return fmt.Errorf("invalid log format %q", o.Format)
	}
	return nil
}

// AddFlags ...
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Level, "log-level", o.Level, "log level: debug/info/warn/error")
	fs.StringVar(&o.Format, "log-format", o.Format, "log format: json/console")
}
