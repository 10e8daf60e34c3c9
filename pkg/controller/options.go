package controller

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/Godmook/GPU-Controller/pkg/controller/catalog"
	"github.com/Godmook/GPU-Controller/pkg/controller/reconcile"
	"github.com/Godmook/GPU-Controller/pkg/controller/snapshot"
)

// Options ...
type Options struct {
	LoopInterval time.Duration      `mapstructure:"loopInterval"`
	Catalog      *catalog.Options   `mapstructure:"catalog"`
	Snapshot     *snapshot.Options  `mapstructure:"snapshot"`
	Reconcile    *reconcile.Options `mapstructure:"reconcile"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		LoopInterval: 30 * time.Second,
		Catalog:      catalog.NewOptions(),
		Snapshot:     snapshot.NewOptions(),
		Reconcile:    reconcile.NewOptions(),
	}
}

// Validate ...
func (o *Options) Validate() error {
	if o.LoopInterval <= 0 {
		return fmt.Errorf("loop interval must be positive")
	}
	if err := o.Catalog.Validate(); err != nil {
		return err
	}
	if err := o.Snapshot.Validate(); err != nil {
		return err
	}
	return o.Reconcile.Validate()
}

// AddFlags ...
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&o.LoopInterval, "loop-interval", o.LoopInterval, "period of the reconciliation loop")
	o.Catalog.AddFlags(fs)
	o.Snapshot.AddFlags(fs)
	o.Reconcile.AddFlags(fs)
}
