package kubeclient

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Options ...
type Options struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Timeout         time.Duration `mapstructure:"timeout"`
	BearerTokenFile string        `mapstructure:"bearerTokenFile"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		Endpoint: "http://kueue-api.kueue-system:8080",
		Timeout:  10 * time.Second,
	}
}

// Validate ...
func (o *Options) Validate() error {
	if o.Endpoint == "" {
		return fmt.Errorf("kube-client endpoint cannot be empty")
	}
	return nil
}

// AddFlags ...
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Endpoint, "kube-client-endpoint", o.Endpoint, "endpoint of the queueing API")
	fs.DurationVar(&o.Timeout, "kube-client-timeout", o.Timeout, "per-request timeout of the queueing API client")
	fs.StringVar(&o.BearerTokenFile, "kube-client-bearer-token-file", o.BearerTokenFile, "file containing the bearer token for the queueing API")
}
