package reconcile

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Options ...
type Options struct {
	WriteConcurrency int  `mapstructure:"writeConcurrency"`
	DryRun           bool `mapstructure:"dryRun"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		WriteConcurrency: 8,
		DryRun:           false,
	}
}

// Validate ...
func (o *Options) Validate() error {
	if o.WriteConcurrency <= 0 {
		return fmt.Errorf("write concurrency must be positive")
	}
	return nil
}

// AddFlags ...
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.WriteConcurrency, "write-concurrency", o.WriteConcurrency, "max in-flight priority writes per cycle")
	fs.BoolVar(&o.DryRun, "dry-run", o.DryRun, "compute and log priorities without writing them back")
}
