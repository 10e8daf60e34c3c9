package view

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Godmook/GPU-Controller/pkg/consts"
	"github.com/Godmook/GPU-Controller/pkg/controller/catalog"
	"github.com/Godmook/GPU-Controller/pkg/controller/models"
	"github.com/Godmook/GPU-Controller/pkg/controller/scoring"
	"github.com/Godmook/GPU-Controller/pkg/controller/snapshot"
	climodels "github.com/Godmook/GPU-Controller/pkg/kubeclient/models"
	"github.com/Godmook/GPU-Controller/pkg/log"
	corev1 "k8s.io/api/core/v1"
)

// Build normalizes a raw snapshot into the immutable ResourceView one
// cycle scores against. Usage is recomputed fresh from admitted workloads
// every cycle, never carried over, so it cannot drift. Malformed objects
// are excluded with a warning; nothing here is fatal to the cycle.
func Build(ctx context.Context, cat *catalog.Catalog, snap *snapshot.Snapshot) *models.ResourceView {
	view := &models.ResourceView{
		Queues: make(map[string]*models.QueueInfo, len(snap.Queues)),
		Groups: make(map[string]*models.PodGroupInfo),
	}

	for _, queue := range snap.Queues {
		view.Queues[queue.Metadata.Name] = buildQueue(ctx, cat, queue, snap.Cohorts)
	}

	for _, workload := range snap.Workloads {
		info, err := buildWorkload(cat, workload)
		if err != nil {
			log.CtxWarnw(ctx, "excluding workload from cycle", "workload", workload.Metadata.Namespace+"/"+workload.Metadata.Name, "err", err)
			continue
		}
		switch info.Phase {
		case consts.WorkloadFinished, consts.WorkloadFailed:
			// finished work holds no resources and accrues no aging
		case consts.WorkloadAdmitted:
			accumulateUsage(ctx, view, info)
		case consts.WorkloadPending:
			addPending(ctx, view, info, workload)
		}
	}

	return view
}

func buildQueue(ctx context.Context, cat *catalog.Catalog, queue *climodels.Queue, cohorts map[string]*climodels.Cohort) *models.QueueInfo {
	info := &models.QueueInfo{
		Name:     queue.Metadata.Name,
		Cohort:   queue.Spec.Cohort,
		Capacity: make(models.ResourceAmounts),
		Usage:    make(models.ResourceAmounts),
	}

	var cohortQuotas climodels.Cohort
	haveCohort := false
	if queue.Spec.Cohort != "" {
		if cohort, ok := cohorts[queue.Spec.Cohort]; ok {
			cohortQuotas = *cohort
			haveCohort = true
		} else {
			// affected kinds fall out of the fairness denominator
			log.CtxWarnw(ctx, "queue references nonexistent cohort", "queue", queue.Metadata.Name, "cohort", queue.Spec.Cohort)
		}
	}

	for _, kind := range cat.Kinds() {
		quantity, ok := queue.Spec.Quotas[corev1.ResourceName(kind)]
		if !ok && haveCohort {
			quantity, ok = cohortQuotas.Spec.Quotas[corev1.ResourceName(kind)]
		}
		if !ok {
			continue
		}
		capacity := quantity.AsApproximateFloat64()
		if capacity < 0 {
			log.CtxWarnw(ctx, "ignoring negative capacity", "queue", queue.Metadata.Name, "kind", kind)
			continue
		}
		info.Capacity[kind] = capacity
	}
	return info
}

func buildWorkload(cat *catalog.Catalog, workload *climodels.Workload) (*models.WorkloadInfo, error) {
	requests := make(models.ResourceAmounts)
	untracked := make(models.ResourceAmounts)
	for _, podSet := range workload.Spec.PodSets {
		count := float64(podSet.Count)
		if count <= 0 {
			count = 1
		}
		for name, quantity := range podSet.Requests {
			amount := quantity.AsApproximateFloat64()
			if amount < 0 {
				return nil, fmt.Errorf("negative request for %s", name)
			}
			if cat.Tracks(string(name)) {
				requests[string(name)] += amount * count
			} else {
				// unknown kinds are kept for display but take no part in
				// fairness math
				untracked[string(name)] += amount * count
			}
		}
	}

	return &models.WorkloadInfo{
		Name:             workload.Metadata.Name,
		Namespace:        workload.Metadata.Namespace,
		Queue:            workload.Spec.QueueName,
		Phase:            phase(workload),
		Tier:             "",
		ResourceVersion:  workload.Metadata.ResourceVersion,
		SubmissionTime:   workload.Metadata.CreationTimestamp.Time,
		Requests:         requests,
		Untracked:        untracked,
		GroupName:        workload.Metadata.Labels[consts.LabelPodGroupName],
		ObservedPriority: workload.Spec.Priority,
	}, nil
}

func phase(workload *climodels.Workload) string {
	for _, condition := range workload.Status.Conditions {
		if condition.Type == consts.ConditionFinished && condition.Status == "True" {
			if condition.Reason == consts.ReasonFailed {
				return consts.WorkloadFailed
			}
			return consts.WorkloadFinished
		}
	}
	for _, condition := range workload.Status.Conditions {
		if condition.Type == consts.ConditionAdmitted && condition.Status == "True" {
			return consts.WorkloadAdmitted
		}
	}
	return consts.WorkloadPending
}

func accumulateUsage(ctx context.Context, view *models.ResourceView, info *models.WorkloadInfo) {
	queue, ok := view.Queues[info.Queue]
	if !ok {
		log.CtxWarnw(ctx, "admitted workload references unknown queue", "workload", info.Key(), "queue", info.Queue)
		return
	}
	queue.Usage.Add(info.Requests)
}

func addPending(ctx context.Context, view *models.ResourceView, info *models.WorkloadInfo, workload *climodels.Workload) {
	info.Tier = scoring.ResolveTier(workload.Metadata.Annotations)

	if info.GroupName == "" {
		view.Pending = append(view.Pending, info)
		return
	}

	declared, err := strconv.Atoi(workload.Metadata.Annotations[consts.AnnotationPodGroupTotalCount])
	if err != nil || declared <= 0 {
		log.CtxWarnw(ctx, "pod-group member without a valid declared count, scoring individually",
			"workload", info.Key(), "group", info.GroupName)
		view.Pending = append(view.Pending, info)
		return
	}

	key := info.Namespace + "/" + info.GroupName
	group, ok := view.Groups[key]
	if !ok {
		group = &models.PodGroupInfo{
			Name:       info.GroupName,
			Namespace:  info.Namespace,
			TotalCount: declared,
			Requests:   make(models.ResourceAmounts),
		}
		view.Groups[key] = group
	}
	group.Members = append(group.Members, info)
	// the group's aggregate vector is attributed once, not per member
	group.Requests.Add(info.Requests)
}
