package server

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Godmook/GPU-Controller/pkg/healthz"
	applog "github.com/Godmook/GPU-Controller/pkg/log"
)

// Run ...
func Run(opts *Options) {
	http.HandleFunc(opts.HealthzPath, healthz.Handler)
	http.HandleFunc(opts.ReadyzPath, healthz.ReadyHandler)
	http.Handle(opts.MetricsPath, promhttp.Handler())
	if err := http.ListenAndServe(fmt.Sprintf(":%d", opts.Port), nil); err != nil {
		applog.Fatalw("Failed to start HTTP server", "err", err)
	}
}
