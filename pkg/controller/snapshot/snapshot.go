package snapshot

import (
	"context"

	"github.com/Godmook/GPU-Controller/pkg/kubeclient"
	climodels "github.com/Godmook/GPU-Controller/pkg/kubeclient/models"
	"github.com/Godmook/GPU-Controller/pkg/log"
)

// Snapshot is the raw cluster state one cycle works from. It is fetched
// once at cycle start; all scoring reads this copy, never the live system.
type Snapshot struct {
	Queues    []*climodels.Queue
	Workloads []*climodels.Workload
	// Cohorts holds the resolved cohorts referenced by queues. A cohort a
	// queue references but which is absent here did not exist (or was
	// unreadable) at snapshot time.
	Cohorts map[string]*climodels.Cohort
}

// Fetcher produces a fresh Snapshot per cycle.
type Fetcher interface {
	Fetch(ctx context.Context) (*Snapshot, error)
}

type fetcherImpl struct {
	client   kubeclient.Client
	pageSize int64
	cohorts  *cohortCache
}

var _ Fetcher = (*fetcherImpl)(nil)

// NewFetcher ...
func NewFetcher(client kubeclient.Client, opts *Options) Fetcher {
	return &fetcherImpl{
		client:   client,
		pageSize: opts.PageSize,
		cohorts:  newCohortCache(client, opts.CohortCacheTTL),
	}
}

// Fetch lists queues and workloads (paged) and resolves the cohorts the
// queues reference. List failures abort the snapshot; an unreadable
// single cohort only excludes that cohort, never the cycle.
func (f *fetcherImpl) Fetch(ctx context.Context) (*Snapshot, error) {
	queues, err := f.listQueues(ctx)
	if err != nil {
		return nil, err
	}
	workloads, err := f.listWorkloads(ctx)
	if err != nil {
		return nil, err
	}

	cohorts := make(map[string]*climodels.Cohort)
	for _, queue := range queues {
		name := queue.Spec.Cohort
		if name == "" {
			continue
		}
		if _, ok := cohorts[name]; ok {
			continue
		}
		cohort, err := f.cohorts.Get(ctx, name)
		if err != nil {
			log.CtxWarnw(ctx, "failed to resolve cohort, its kinds are excluded this cycle", "cohort", name, "err", err)
			continue
		}
		if cohort != nil {
			cohorts[name] = cohort
		}
	}

	return &Snapshot{Queues: queues, Workloads: workloads, Cohorts: cohorts}, nil
}

func (f *fetcherImpl) listQueues(ctx context.Context) ([]*climodels.Queue, error) {
	var res []*climodels.Queue
	continueToken := ""
	for {
		resp, err := f.client.ListQueues(ctx, &climodels.ListQueuesRequest{
			Limit:    f.pageSize,
			Continue: continueToken,
		})
		if err != nil {
			return nil, err
		}
		res = append(res, resp.Items...)
		continueToken = resp.Metadata.Continue
		if continueToken == "" {
			return res, nil
		}
	}
}

func (f *fetcherImpl) listWorkloads(ctx context.Context) ([]*climodels.Workload, error) {
	var res []*climodels.Workload
	continueToken := ""
	for {
		resp, err := f.client.ListWorkloads(ctx, &climodels.ListWorkloadsRequest{
			Limit:    f.pageSize,
			Continue: continueToken,
		})
		if err != nil {
			return nil, err
		}
		res = append(res, resp.Items...)
		continueToken = resp.Metadata.Continue
		if continueToken == "" {
			return res, nil
		}
	}
}
