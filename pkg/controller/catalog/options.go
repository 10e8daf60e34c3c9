package catalog

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/Godmook/GPU-Controller/pkg/consts"
)

// Options ...
type Options struct {
	// ResourceWeights and TierWeights are only settable via config file;
	// kinds are listed in fairness tie-break order.
	ResourceWeights map[string]float64 `mapstructure:"resourceWeights"`
	TierWeights     map[string]float64 `mapstructure:"tierWeights"`

	AgingCoefficient     float64       `mapstructure:"agingCoefficient"`
	MaxAgingTime         time.Duration `mapstructure:"maxAgingTime"`
	FairnessPenaltyScale float64       `mapstructure:"fairnessPenaltyScale"`
	PriorityDeadBand     int64         `mapstructure:"priorityDeadBand"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		ResourceWeights: map[string]float64{
			consts.ResourceCPU:       1.0,
			consts.ResourceMemory:    1.0,
			consts.ResourceGPU:       10.0,
			consts.ResourceGPUCores:  0.1,
			consts.ResourceGPUMemPct: 0.1,
		},
		TierWeights: map[string]float64{
			consts.TierUrgent:   1000,
			consts.TierApproved: 100,
			consts.TierNormal:   1,
		},
		AgingCoefficient:     0.1,
		MaxAgingTime:         time.Hour,
		FairnessPenaltyScale: 1.0,
		PriorityDeadBand:     0,
	}
}

// Validate ...
func (o *Options) Validate() error {
	_, err := New(o)
	return err
}

// AddFlags ...
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&o.AgingCoefficient, "aging-coefficient", o.AgingCoefficient, "priority bonus per second of pending wait")
	fs.DurationVar(&o.MaxAgingTime, "max-aging-time", o.MaxAgingTime, "wait time beyond which the aging bonus stops growing")
	fs.Float64Var(&o.FairnessPenaltyScale, "fairness-penalty-scale", o.FairnessPenaltyScale, "multiplier applied to the queue dominant share penalty")
	fs.Int64Var(&o.PriorityDeadBand, "priority-dead-band", o.PriorityDeadBand, "priority delta below which no write is issued")
}
