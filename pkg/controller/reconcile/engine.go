package reconcile

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/Godmook/GPU-Controller/pkg/controller/catalog"
	"github.com/Godmook/GPU-Controller/pkg/controller/models"
	"github.com/Godmook/GPU-Controller/pkg/kubeclient"
	climodels "github.com/Godmook/GPU-Controller/pkg/kubeclient/models"
	"github.com/Godmook/GPU-Controller/pkg/log"
)

// Per-workload reconciliation outcomes.
const (
	// OutcomeSkipped means no write was needed, or dry-run suppressed it.
	OutcomeSkipped = "Skipped"
	// OutcomeApplied means the priority write succeeded.
	OutcomeApplied = "Applied"
	// OutcomeDeferred means a version conflict or cycle cancellation left
	// the workload for the next cycle. Never retried within the cycle.
	OutcomeDeferred = "Deferred"
	// OutcomeDropped means the workload disappeared between snapshot and write.
	OutcomeDropped = "Dropped"
	// OutcomeReported means an unexpected write error was logged.
	OutcomeReported = "Reported"
)

// Result is the outcome of reconciling one workload's priority.
type Result struct {
	Workload *models.WorkloadInfo
	Outcome  string
	Priority int64
	Err      error
}

// Engine pushes computed priorities to the external system with bounded
// concurrency. One attempt per workload per cycle; conflicts are left for
// the next cycle, which rebuilds the view from a fresh snapshot anyway.
type Engine struct {
	client      kubeclient.Client
	concurrency int
	deadBand    int64
	dryRun      bool
}

// New ...
func New(client kubeclient.Client, cat *catalog.Catalog, opts *Options) *Engine {
	return &Engine{
		client:      client,
		concurrency: opts.WriteConcurrency,
		deadBand:    cat.PriorityDeadBand,
		dryRun:      opts.DryRun,
	}
}

type writeItem struct {
	workload *models.WorkloadInfo
	priority int64
}

// Apply reconciles every record's targets and returns one Result per
// workload. A canceled ctx stops new writes from being issued; writes
// already in flight run to completion.
func (e *Engine) Apply(ctx context.Context, records []*models.PriorityRecord) []Result {
	items := make([]writeItem, 0, len(records))
	for _, record := range records {
		for _, workload := range record.Targets() {
			items = append(items, writeItem{workload: workload, priority: record.Priority})
		}
	}

	results := make([]Result, len(items))
	group := new(errgroup.Group)
	group.SetLimit(e.concurrency)
	for idx, item := range items {
		idx, item := idx, item
		group.Go(func() error {
			results[idx] = e.reconcileOne(ctx, item)
			return nil
		})
	}
	_ = group.Wait()
	return results
}

func (e *Engine) reconcileOne(ctx context.Context, item writeItem) Result {
	result := Result{Workload: item.workload, Priority: item.priority}

	if observed := item.workload.ObservedPriority; observed != nil {
		delta := item.priority - *observed
		if delta < 0 {
			delta = -delta
		}
		if delta <= e.deadBand {
			result.Outcome = OutcomeSkipped
			return result
		}
	}

	if e.dryRun {
		log.CtxInfow(ctx, "dry-run, would write priority",
			"workload", item.workload.Key(), "priority", item.priority)
		result.Outcome = OutcomeSkipped
		return result
	}

	if ctx.Err() != nil {
		result.Outcome = OutcomeDeferred
		result.Err = ctx.Err()
		return result
	}

	// the write itself is not canceled mid-flight; only new writes stop
	_, err := e.client.UpdateWorkloadPriority(context.WithoutCancel(ctx), &climodels.UpdateWorkloadPriorityRequest{
		Namespace:       item.workload.Namespace,
		Name:            item.workload.Name,
		ResourceVersion: item.workload.ResourceVersion,
		Priority:        item.priority,
	})
	switch {
	case err == nil:
		result.Outcome = OutcomeApplied
	case errors.Is(err, kubeclient.ErrConflict):
		log.CtxInfow(ctx, "priority write lost a version race, deferring to next cycle",
			"workload", item.workload.Key())
		result.Outcome = OutcomeDeferred
		result.Err = err
	case errors.Is(err, kubeclient.ErrNotFound):
		log.CtxInfow(ctx, "workload disappeared before priority write",
			"workload", item.workload.Key())
		result.Outcome = OutcomeDropped
		result.Err = err
	default:
		log.CtxErrorw(ctx, "priority write failed",
			"workload", item.workload.Key(), "err", err)
		result.Outcome = OutcomeReported
		result.Err = err
	}
	return result
}
