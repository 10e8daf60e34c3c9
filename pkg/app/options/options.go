package options

import (
	"github.com/spf13/pflag"

	"github.com/Godmook/GPU-Controller/pkg/controller"
	"github.com/Godmook/GPU-Controller/pkg/kubeclient"
	"github.com/Godmook/GPU-Controller/pkg/leaderelection"
	"github.com/Godmook/GPU-Controller/pkg/log"
	"github.com/Godmook/GPU-Controller/pkg/server"
)

// Options ...
type Options struct {
	Log            *log.Options            `mapstructure:"log"`
	LeaderElection *leaderelection.Options `mapstructure:"leaderElection"`
	KubeClient     *kubeclient.Options     `mapstructure:"kubeClient"`
	Server         *server.Options         `mapstructure:"server"`
	Controller     *controller.Options     `mapstructure:"controller"`

	// HealthCheck probes the queueing API once and exits; used as a
	// container health command, not a run mode.
	HealthCheck bool `mapstructure:"healthCheck"`
}

// NewOptions ...
func NewOptions() *Options {
	return &Options{
		Log:            log.NewOptions(),
		LeaderElection: leaderelection.NewOptions(),
		KubeClient:     kubeclient.NewOptions(),
		Server:         server.NewOptions(),
		Controller:     controller.NewOptions(),
	}
}

// Validate ...
func (o *Options) Validate() error {
	if err := o.Log.Validate(); err != nil {
		return err
	}
	if err := o.LeaderElection.Validate(); err != nil {
		return err
	}
	if err := o.KubeClient.Validate(); err != nil {
		return err
	}
	if err := o.Server.Validate(); err != nil {
		return err
	}
	if err := o.Controller.Validate(); err != nil {
		return err
	}
	return nil
}

// AddFlags ...
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.Log.AddFlags(fs)
	o.LeaderElection.AddFlags(fs)
	o.KubeClient.AddFlags(fs)
	o.Server.AddFlags(fs)
	o.Controller.AddFlags(fs)
	fs.BoolVar(&o.HealthCheck, "health-check", o.HealthCheck, "probe the queueing API once and exit")
}
