package controller

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/Godmook/GPU-Controller/pkg/controller/catalog"
	"github.com/Godmook/GPU-Controller/pkg/controller/crontab"
	"github.com/Godmook/GPU-Controller/pkg/controller/drf"
	"github.com/Godmook/GPU-Controller/pkg/controller/reconcile"
	"github.com/Godmook/GPU-Controller/pkg/controller/scoring"
	"github.com/Godmook/GPU-Controller/pkg/controller/snapshot"
	"github.com/Godmook/GPU-Controller/pkg/controller/view"
	"github.com/Godmook/GPU-Controller/pkg/healthz"
	"github.com/Godmook/GPU-Controller/pkg/kubeclient"
	"github.com/Godmook/GPU-Controller/pkg/log"
	"github.com/Godmook/GPU-Controller/pkg/metrics"
)

// Controller drives the periodic fairness cycle: snapshot the cluster,
// build the resource view, compute dominant shares, score pending work
// and reconcile priorities back. Cycles never overlap; a slow cycle
// causes the next tick to be skipped, not queued.
type Controller struct {
	cat     *catalog.Catalog
	fetcher snapshot.Fetcher
	scorer  *scoring.Scorer
	engine  *reconcile.Engine

	runCtx context.Context
	ready  atomic.Bool
}

// New builds the controller and registers its cycle on the shared
// crontab. Invalid fairness configuration is a construction error.
func New(client kubeclient.Client, opts *Options) (*Controller, error) {
	cat, err := catalog.New(opts.Catalog)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cat:     cat,
		fetcher: snapshot.NewFetcher(client, opts.Snapshot),
		scorer:  scoring.New(cat),
		engine:  reconcile.New(client, cat, opts.Reconcile),
	}
	if err = crontab.RegisterCron(opts.LoopInterval, c.runCycle); err != nil {
		return nil, err
	}
	healthz.RegisterReadyChecker(c)
	return c, nil
}

// Run starts the loop and blocks until ctx is canceled, then waits for
// the in-flight cycle to drain.
func (c *Controller) Run(ctx context.Context) {
	c.runCtx = ctx
	c.runCycle()
	crontab.Start()
	<-ctx.Done()
	<-crontab.Stop().Done()
}

// Name ...
func (c *Controller) Name() string {
	return "cycle"
}

// Check reports ready once at least one full cycle has completed.
func (c *Controller) Check(_ *http.Request) error {
	if !c.ready.Load() {
		return fmt.Errorf("no completed reconciliation cycle yet")
	}
	return nil
}

func (c *Controller) runCycle() {
	ctx := c.runCtx
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	snap, err := c.fetcher.Fetch(ctx)
	if err != nil {
		log.CtxErrorw(ctx, "snapshot failed, skipping cycle", "err", err)
		metrics.CycleTotal.WithLabelValues("error").Inc()
		return
	}

	resView := view.Build(ctx, c.cat, snap)
	drf.ComputeShares(c.cat, resView)

	pending := len(resView.Pending)
	for _, queue := range resView.Queues {
		metrics.QueueDominantShare.WithLabelValues(queue.Name, queue.DominantKind).Set(queue.DominantShare)
		log.CtxDebugw(ctx, "queue dominant share",
			"queue", queue.Name, "share", queue.DominantShare, "kind", queue.DominantKind)
	}
	for _, group := range resView.Groups {
		pending += len(group.Members)
	}
	metrics.PendingWorkloads.Set(float64(pending))

	records := c.scorer.Score(resView, time.Now())
	for _, record := range records {
		log.CtxDebugw(ctx, "scored",
			"key", record.Key(), "tier", record.Tier, "aging", record.AgingBonus,
			"penalty", record.FairnessPenalty, "priority", record.Priority,
			"schedulable", record.Schedulable)
	}
	results := c.engine.Apply(ctx, records)

	outcomes := make(map[string]int)
	for _, result := range results {
		outcomes[result.Outcome]++
		metrics.ReconcileOutcomes.WithLabelValues(result.Outcome).Inc()
	}

	metrics.CycleDuration.Observe(time.Since(start).Seconds())
	metrics.CycleTotal.WithLabelValues("success").Inc()
	c.ready.Store(true)

	log.CtxInfow(ctx, "cycle complete",
		"duration", time.Since(start).String(),
		"queues", len(resView.Queues),
		"pending", pending,
		"records", len(records),
		"applied", outcomes[reconcile.OutcomeApplied],
		"skipped", outcomes[reconcile.OutcomeSkipped],
		"deferred", outcomes[reconcile.OutcomeDeferred],
		"dropped", outcomes[reconcile.OutcomeDropped],
		"reported", outcomes[reconcile.OutcomeReported],
	)
}
