package snapshot

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Options ...
type Options struct {
	PageSize       int64         `mapstructure:"pageSize"`
	CohortCacheTTL time.Duration `mapstructure:"cohortCacheTTL"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		PageSize:       256,
		CohortCacheTTL: 30 * time.Second,
	}
}

// Validate ...
func (o *Options) Validate() error {
	if o.PageSize <= 0 {
		return fmt.Errorf("snapshot page size must be positive")
	}
	return nil
}

// AddFlags ...
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.Int64Var(&o.PageSize, "snapshot-page-size", o.PageSize, "page size of snapshot list requests")
	fs.DurationVar(&o.CohortCacheTTL, "snapshot-cohort-cache-ttl", o.CohortCacheTTL, "how long cohort quota lookups are cached")
}
