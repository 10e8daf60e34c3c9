package drf

import (
	"github.com/Godmook/GPU-Controller/pkg/controller/catalog"
	"github.com/Godmook/GPU-Controller/pkg/controller/models"
)

// ComputeShares fills the dominant share of every queue in the view.
func ComputeShares(cat *catalog.Catalog, view *models.ResourceView) {
	for _, queue := range view.Queues {
		queue.DominantShare, queue.DominantKind = DominantShare(cat, queue)
	}
}

// DominantShare computes the weighted dominant resource share of one
// queue: the maximum over tracked kinds with positive capacity of
// weight(r) * usage(r) / capacity(r). Kinds without capacity are excluded
// from the denominator rather than treated as zero-capacity. Ties keep
// the earlier kind in catalog order. A queue with zero usage, or with no
// tracked positive-capacity kind, has share 0.
func DominantShare(cat *catalog.Catalog, queue *models.QueueInfo) (float64, string) {
	share := 0.0
	kind := ""
	for _, k := range cat.Kinds() {
		capacity, ok := queue.Capacity[k]
		if !ok || capacity <= 0 {
			continue
		}
		ratio := cat.KindWeight(k) * queue.Usage[k] / capacity
		if ratio > share {
			share = ratio
			kind = k
		}
	}
	return share, kind
}
