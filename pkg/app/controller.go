package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	genericapiserver "k8s.io/apiserver/pkg/server"

	"github.com/Godmook/GPU-Controller/pkg/app/options"
	"github.com/Godmook/GPU-Controller/pkg/consts"
	"github.com/Godmook/GPU-Controller/pkg/controller"
	"github.com/Godmook/GPU-Controller/pkg/kubeclient"
	climodels "github.com/Godmook/GPU-Controller/pkg/kubeclient/models"
	"github.com/Godmook/GPU-Controller/pkg/leaderelection"
	applog "github.com/Godmook/GPU-Controller/pkg/log"
	"github.com/Godmook/GPU-Controller/pkg/server"
	"github.com/Godmook/GPU-Controller/pkg/version"
	"github.com/Godmook/GPU-Controller/pkg/viper"
)

func newControllerCommand(opts *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:          consts.Component,
		Short:        "weighted DRF priority controller",
		Long:         "weighted DRF priority controller",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			version.PrintVersionOrContinue()
			if err := opts.Validate(); err != nil {
				return err
			}

			applog.RegisterLogger(opts.Log)
			defer applog.Sync()

			if opts.HealthCheck {
				return healthCheck(opts)
			}

			cmd.Flags().VisitAll(func(flag *pflag.Flag) {
				applog.Infow("FLAG", flag.Name, flag.Value)
			})

			return run(opts)
		},
	}
}

func run(opts *options.Options) error {
	applog.Infow("run weighted DRF priority controller")
	ctx := genericapiserver.SetupSignalContext()

	ctrl, err := controller.New(kubeclient.NewClient(opts.KubeClient), opts.Controller)
	if err != nil {
		return err
	}

	if err = leaderelection.Init(opts.LeaderElection); err != nil {
		return err
	}

	go server.Run(opts.Server)

	leaderelection.Run(ctx, ctrl.Run)

	return fmt.Errorf("unexpected finished")
}

func healthCheck(opts *options.Options) error {
	client := kubeclient.NewClient(opts.KubeClient)
	if _, err := client.ListQueues(context.Background(), &climodels.ListQueuesRequest{Limit: 1}); err != nil {
		return fmt.Errorf("queueing API unreachable: %w", err)
	}
	return nil
}

// NewControllerCommand creates the controller command.
func NewControllerCommand() (*cobra.Command, error) {
	opts := options.NewOptions()
	cmd := newControllerCommand(opts)

	opts.AddFlags(cmd.Flags())
	version.AddFlags(cmd.Flags())
	cmd.Flags().AddFlag(pflag.Lookup(viper.ConfigFlagName))
	if err := viper.LoadConfig(opts); err != nil {
		return nil, err
	}
	return cmd, nil
}
