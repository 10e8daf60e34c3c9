package drf

import (
	"testing"

	"github.com/onsi/gomega"

	"github.com/Godmook/GPU-Controller/pkg/controller/catalog"
	"github.com/Godmook/GPU-Controller/pkg/controller/models"
	"github.com/Godmook/GPU-Controller/pkg/consts"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	cat, err := catalog.New(catalog.NewOptions())
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestDominantShare(t *testing.T) {
	cat := newCatalog(t)

	tests := []struct {
		name      string
		queue     *models.QueueInfo
		wantShare float64
		wantKind  string
	}{
		{
			name: "zero usage",
			queue: &models.QueueInfo{
				Capacity: models.ResourceAmounts{consts.ResourceCPU: 100, consts.ResourceGPU: 8},
				Usage:    models.ResourceAmounts{},
			},
			wantShare: 0,
			wantKind:  "",
		},
		{
			name: "no positive capacity",
			queue: &models.QueueInfo{
				Capacity: models.ResourceAmounts{},
				Usage:    models.ResourceAmounts{consts.ResourceGPU: 4},
			},
			wantShare: 0,
			wantKind:  "",
		},
		{
			name: "gpu weight dominates",
			// cpu: 1.0*50/100=0.5, gpu: 10.0*4/8=5
			queue: &models.QueueInfo{
				Capacity: models.ResourceAmounts{consts.ResourceCPU: 100, consts.ResourceGPU: 8},
				Usage:    models.ResourceAmounts{consts.ResourceCPU: 50, consts.ResourceGPU: 4},
			},
			wantShare: 5,
			wantKind:  consts.ResourceGPU,
		},
		{
			name: "tie keeps earlier kind",
			// cpu: 1.0*50/100=0.5, memory: 1.0*32/64=0.5
			queue: &models.QueueInfo{
				Capacity: models.ResourceAmounts{consts.ResourceCPU: 100, consts.ResourceMemory: 64},
				Usage:    models.ResourceAmounts{consts.ResourceCPU: 50, consts.ResourceMemory: 32},
			},
			wantShare: 0.5,
			wantKind:  consts.ResourceCPU,
		},
		{
			name: "kind without capacity is excluded",
			queue: &models.QueueInfo{
				Capacity: models.ResourceAmounts{consts.ResourceCPU: 100},
				Usage:    models.ResourceAmounts{consts.ResourceCPU: 10, consts.ResourceGPU: 4},
			},
			wantShare: 0.1,
			wantKind:  consts.ResourceCPU,
		},
		{
			name: "saturated gpu queue",
			// 10.0 * 4/4 = 10
			queue: &models.QueueInfo{
				Capacity: models.ResourceAmounts{consts.ResourceGPU: 4},
				Usage:    models.ResourceAmounts{consts.ResourceGPU: 4},
			},
			wantShare: 10,
			wantKind:  consts.ResourceGPU,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			share, kind := DominantShare(cat, test.queue)
			g.Expect(share).To(gomega.BeNumerically("~", test.wantShare, 1e-9))
			g.Expect(kind).To(gomega.Equal(test.wantKind))
		})
	}
}

func TestComputeShares(t *testing.T) {
	g := gomega.NewWithT(t)
	cat := newCatalog(t)

	view := &models.ResourceView{
		Queues: map[string]*models.QueueInfo{
			"busy": {
				Name:     "busy",
				Capacity: models.ResourceAmounts{consts.ResourceGPU: 8},
				Usage:    models.ResourceAmounts{consts.ResourceGPU: 8},
			},
			"idle": {
				Name:     "idle",
				Capacity: models.ResourceAmounts{consts.ResourceGPU: 8},
				Usage:    models.ResourceAmounts{},
			},
		},
	}
	ComputeShares(cat, view)

	g.Expect(view.Queues["busy"].DominantShare).To(gomega.BeNumerically("~", 10, 1e-9))
	g.Expect(view.Queues["busy"].DominantKind).To(gomega.Equal(consts.ResourceGPU))
	g.Expect(view.Queues["idle"].DominantShare).To(gomega.BeZero())
}
