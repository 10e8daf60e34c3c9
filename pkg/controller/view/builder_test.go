package view

import (
	"context"
	"testing"
	"time"

	"github.com/onsi/gomega"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/Godmook/GPU-Controller/pkg/consts"
	"github.com/Godmook/GPU-Controller/pkg/controller/catalog"
	"github.com/Godmook/GPU-Controller/pkg/controller/snapshot"
	climodels "github.com/Godmook/GPU-Controller/pkg/kubeclient/models"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	cat, err := catalog.New(catalog.NewOptions())
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func quotas(pairs map[string]string) corev1.ResourceList {
	res := make(corev1.ResourceList, len(pairs))
	for kind, value := range pairs {
		res[corev1.ResourceName(kind)] = resource.MustParse(value)
	}
	return res
}

func TestBuildQueueCapacity(t *testing.T) {
	g := gomega.NewWithT(t)
	cat := newCatalog(t)

	snap := &snapshot.Snapshot{
		Queues: []*climodels.Queue{
			{
				Metadata: climodels.ObjectMeta{Name: "own-quota"},
				Spec: climodels.QueueSpec{Quotas: quotas(map[string]string{
					consts.ResourceCPU: "100",
					consts.ResourceGPU: "8",
				})},
			},
			{
				Metadata: climodels.ObjectMeta{Name: "borrowing"},
				Spec: climodels.QueueSpec{
					Cohort: "shared",
					Quotas: quotas(map[string]string{consts.ResourceCPU: "50"}),
				},
			},
			{
				Metadata: climodels.ObjectMeta{Name: "dangling"},
				Spec: climodels.QueueSpec{
					Cohort: "missing",
					Quotas: quotas(map[string]string{consts.ResourceCPU: "10"}),
				},
			},
		},
		Cohorts: map[string]*climodels.Cohort{
			"shared": {
				Metadata: climodels.ObjectMeta{Name: "shared"},
				Spec: climodels.CohortSpec{Quotas: quotas(map[string]string{
					consts.ResourceCPU: "1000",
					consts.ResourceGPU: "32",
				})},
			},
		},
	}

	view := Build(context.Background(), cat, snap)
	g.Expect(view.Queues).To(gomega.HaveLen(3))

	own := view.Queues["own-quota"]
	g.Expect(own.Capacity[consts.ResourceCPU]).To(gomega.Equal(100.0))
	g.Expect(own.Capacity[consts.ResourceGPU]).To(gomega.Equal(8.0))
	g.Expect(own.Capacity).NotTo(gomega.HaveKey(consts.ResourceMemory))

	// own quota wins, the cohort only fills kinds the queue left undeclared
	borrowing := view.Queues["borrowing"]
	g.Expect(borrowing.Capacity[consts.ResourceCPU]).To(gomega.Equal(50.0))
	g.Expect(borrowing.Capacity[consts.ResourceGPU]).To(gomega.Equal(32.0))

	// an unresolvable cohort leaves only the queue's own kinds
	dangling := view.Queues["dangling"]
	g.Expect(dangling.Capacity).To(gomega.HaveLen(1))
	g.Expect(dangling.Capacity[consts.ResourceCPU]).To(gomega.Equal(10.0))
}

func workload(name, queue string, count int32, requests corev1.ResourceList, conditions ...climodels.WorkloadCondition) *climodels.Workload {
	return &climodels.Workload{
		Metadata: climodels.ObjectMeta{
			Name:              name,
			Namespace:         "team-a",
			ResourceVersion:   "1",
			CreationTimestamp: metav1.NewTime(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)),
		},
		Spec: climodels.WorkloadSpec{
			QueueName: queue,
			PodSets:   []climodels.PodSet{{Count: count, Requests: requests}},
		},
		Status: climodels.WorkloadStatus{Conditions: conditions},
	}
}

func TestBuildWorkloadPhases(t *testing.T) {
	g := gomega.NewWithT(t)
	cat := newCatalog(t)

	gpu := quotas(map[string]string{consts.ResourceGPU: "1"})
	snap := &snapshot.Snapshot{
		Queues: []*climodels.Queue{{
			Metadata: climodels.ObjectMeta{Name: "q"},
			Spec:     climodels.QueueSpec{Quotas: quotas(map[string]string{consts.ResourceGPU: "8"})},
		}},
		Workloads: []*climodels.Workload{
			workload("pending", "q", 1, gpu),
			workload("admitted", "q", 2, gpu,
				climodels.WorkloadCondition{Type: consts.ConditionAdmitted, Status: "True"}),
			workload("finished", "q", 1, gpu,
				climodels.WorkloadCondition{Type: consts.ConditionAdmitted, Status: "True"},
				climodels.WorkloadCondition{Type: consts.ConditionFinished, Status: "True", Reason: consts.ReasonSucceeded}),
			workload("failed", "q", 1, gpu,
				climodels.WorkloadCondition{Type: consts.ConditionFinished, Status: "True", Reason: consts.ReasonFailed}),
		},
	}

	view := Build(context.Background(), cat, snap)

	// only the admitted workload holds capacity: 2 pods * 1 gpu
	g.Expect(view.Queues["q"].Usage[consts.ResourceGPU]).To(gomega.Equal(2.0))
	g.Expect(view.Pending).To(gomega.HaveLen(1))
	g.Expect(view.Pending[0].Name).To(gomega.Equal("pending"))
	g.Expect(view.Pending[0].Tier).To(gomega.Equal(consts.TierNormal))
}

func TestBuildWorkloadRequests(t *testing.T) {
	g := gomega.NewWithT(t)
	cat := newCatalog(t)

	snap := &snapshot.Snapshot{
		Queues: []*climodels.Queue{{Metadata: climodels.ObjectMeta{Name: "q"}}},
		Workloads: []*climodels.Workload{
			{
				Metadata: climodels.ObjectMeta{Name: "multi", Namespace: "team-a"},
				Spec: climodels.WorkloadSpec{
					QueueName: "q",
					PodSets: []climodels.PodSet{
						{Count: 2, Requests: quotas(map[string]string{
							consts.ResourceCPU: "4",
							consts.ResourceGPU: "1",
						})},
						{Count: 1, Requests: quotas(map[string]string{
							consts.ResourceCPU:  "8",
							"ephemeral-storage": "10",
						})},
					},
				},
			},
			{
				Metadata: climodels.ObjectMeta{Name: "negative", Namespace: "team-a"},
				Spec: climodels.WorkloadSpec{
					QueueName: "q",
					PodSets: []climodels.PodSet{
						{Count: 1, Requests: quotas(map[string]string{consts.ResourceCPU: "-1"})},
					},
				},
			},
		},
	}

	view := Build(context.Background(), cat, snap)

	// a malformed workload is excluded, not fatal
	g.Expect(view.Pending).To(gomega.HaveLen(1))
	multi := view.Pending[0]
	g.Expect(multi.Requests[consts.ResourceCPU]).To(gomega.Equal(16.0))
	g.Expect(multi.Requests[consts.ResourceGPU]).To(gomega.Equal(2.0))
	g.Expect(multi.Requests).NotTo(gomega.HaveKey("ephemeral-storage"))
	g.Expect(multi.Untracked["ephemeral-storage"]).To(gomega.Equal(10.0))
}

func TestBuildPodGroups(t *testing.T) {
	g := gomega.NewWithT(t)
	cat := newCatalog(t)

	member := func(name, group, total string) *climodels.Workload {
		w := workload(name, "q", 1, quotas(map[string]string{consts.ResourceGPU: "1"}))
		w.Metadata.Labels = map[string]string{consts.LabelPodGroupName: group}
		w.Metadata.Annotations = map[string]string{consts.AnnotationPodGroupTotalCount: total}
		return w
	}

	snap := &snapshot.Snapshot{
		Queues: []*climodels.Queue{{Metadata: climodels.ObjectMeta{Name: "q"}}},
		Workloads: []*climodels.Workload{
			member("worker-0", "training", "2"),
			member("worker-1", "training", "2"),
			member("stray", "broken", "zero"),
		},
	}

	view := Build(context.Background(), cat, snap)

	g.Expect(view.Groups).To(gomega.HaveLen(1))
	group := view.Groups["team-a/training"]
	g.Expect(group.Members).To(gomega.HaveLen(2))
	g.Expect(group.TotalCount).To(gomega.Equal(2))
	g.Expect(group.Complete()).To(gomega.BeTrue())
	g.Expect(group.Requests[consts.ResourceGPU]).To(gomega.Equal(2.0))

	// an unparseable declared count falls back to individual scoring
	g.Expect(view.Pending).To(gomega.HaveLen(1))
	g.Expect(view.Pending[0].Name).To(gomega.Equal("stray"))
}
