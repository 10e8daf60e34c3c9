package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/onsi/gomega"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/Godmook/GPU-Controller/pkg/controller/catalog"
	"github.com/Godmook/GPU-Controller/pkg/controller/reconcile"
	"github.com/Godmook/GPU-Controller/pkg/controller/scoring"
	"github.com/Godmook/GPU-Controller/pkg/controller/snapshot"
	snapfake "github.com/Godmook/GPU-Controller/pkg/controller/snapshot/fake"
	"github.com/Godmook/GPU-Controller/pkg/kubeclient"
	"github.com/Godmook/GPU-Controller/pkg/kubeclient/fake"
	climodels "github.com/Godmook/GPU-Controller/pkg/kubeclient/models"
	"github.com/Godmook/GPU-Controller/pkg/utils"
)

func newTestController(t *testing.T, fetcher snapshot.Fetcher, client *fake.FakeClient) *Controller {
	catOpts := catalog.NewOptions()
	// freeze aging so repeated cycles compute identical priorities
	catOpts.AgingCoefficient = 0
	cat, err := catalog.New(catOpts)
	if err != nil {
		t.Fatal(err)
	}
	return &Controller{
		cat:     cat,
		fetcher: fetcher,
		scorer:  scoring.New(cat),
		engine:  reconcile.New(client, cat, reconcile.NewOptions()),
		runCtx:  context.Background(),
	}
}

func pendingSnapshot(priority *int64) *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Queues: []*climodels.Queue{{Metadata: climodels.ObjectMeta{Name: "q"}}},
		Workloads: []*climodels.Workload{{
			Metadata: climodels.ObjectMeta{
				Name:              "job",
				Namespace:         "team-a",
				ResourceVersion:   "1",
				CreationTimestamp: metav1.NewTime(time.Now().Add(-time.Minute)),
			},
			Spec: climodels.WorkloadSpec{QueueName: "q", Priority: priority},
		}},
	}
}

func TestRunCycleIdempotent(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fakeFetcher := snapfake.NewFakeFetcher(ctrl)
	// first cycle sees no priority, the second sees the value it wrote
	first := fakeFetcher.EXPECT().Fetch(gomock.Any()).Return(pendingSnapshot(nil), nil)
	fakeFetcher.EXPECT().Fetch(gomock.Any()).Return(pendingSnapshot(utils.Point(int64(1))), nil).After(first)

	fakeClient := fake.NewFakeClient(ctrl)
	fakeClient.EXPECT().UpdateWorkloadPriority(gomock.Any(), &climodels.UpdateWorkloadPriorityRequest{
		Namespace: "team-a", Name: "job", ResourceVersion: "1", Priority: 1,
	}).Return(&climodels.UpdateWorkloadPriorityResponse{}, nil)

	c := newTestController(t, fakeFetcher, fakeClient)
	c.runCycle()
	// an unchanged view issues no writes at all
	c.runCycle()

	g.Expect(c.Check(nil)).To(gomega.Succeed())
}

func TestRunCycleSnapshotFailure(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fakeFetcher := snapfake.NewFakeFetcher(ctrl)
	fakeFetcher.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("api down"))

	fakeClient := fake.NewFakeClient(ctrl)

	c := newTestController(t, fakeFetcher, fakeClient)
	// a failed snapshot skips the cycle without touching any workload,
	// and the controller never reports ready
	c.runCycle()
	g.Expect(c.Check(nil)).NotTo(gomega.Succeed())
}

func TestRunCycleDeferredRetriedNextCycle(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fakeFetcher := snapfake.NewFakeFetcher(ctrl)
	fakeFetcher.EXPECT().Fetch(gomock.Any()).Return(pendingSnapshot(nil), nil).Times(2)

	fakeClient := fake.NewFakeClient(ctrl)
	// the conflicted write is attempted once per cycle, never within one
	fakeClient.EXPECT().UpdateWorkloadPriority(gomock.Any(), gomock.Any()).
		Return(nil, kubeclient.ErrConflict).Times(2)

	c := newTestController(t, fakeFetcher, fakeClient)
	c.runCycle()
	c.runCycle()

	g.Expect(c.Check(nil)).To(gomega.Succeed())
}

func TestReadiness(t *testing.T) {
	g := gomega.NewWithT(t)

	c := &Controller{}
	g.Expect(c.Name()).To(gomega.Equal("cycle"))
	g.Expect(c.Check(nil)).NotTo(gomega.Succeed())
	c.ready.Store(true)
	g.Expect(c.Check(nil)).To(gomega.Succeed())
}
