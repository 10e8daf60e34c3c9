package scoring

import (
	"testing"
	"time"

	"github.com/onsi/gomega"

	"github.com/Godmook/GPU-Controller/pkg/consts"
	"github.com/Godmook/GPU-Controller/pkg/controller/catalog"
	"github.com/Godmook/GPU-Controller/pkg/controller/models"
)

func newScorer(t *testing.T) *Scorer {
	cat, err := catalog.New(catalog.NewOptions())
	if err != nil {
		t.Fatal(err)
	}
	return New(cat)
}

func newView(queues ...*models.QueueInfo) *models.ResourceView {
	view := &models.ResourceView{
		Queues: make(map[string]*models.QueueInfo),
		Groups: make(map[string]*models.PodGroupInfo),
	}
	for _, queue := range queues {
		view.Queues[queue.Name] = queue
	}
	return view
}

func pendingWorkload(name, queue, tier string, submitted time.Time) *models.WorkloadInfo {
	return &models.WorkloadInfo{
		Name:           name,
		Namespace:      "team-a",
		Queue:          queue,
		Phase:          consts.WorkloadPending,
		Tier:           tier,
		SubmissionTime: submitted,
	}
}

func TestScoreAging(t *testing.T) {
	g := gomega.NewWithT(t)
	s := newScorer(t)
	now := time.Now()

	view := newView(&models.QueueInfo{Name: "q"})
	view.Pending = []*models.WorkloadInfo{
		pendingWorkload("fresh", "q", consts.TierNormal, now),
		pendingWorkload("waited", "q", consts.TierNormal, now.Add(-10*time.Minute)),
		pendingWorkload("capped", "q", consts.TierNormal, now.Add(-3*time.Hour)),
		pendingWorkload("future", "q", consts.TierNormal, now.Add(time.Minute)),
	}

	records := make(map[string]*models.PriorityRecord)
	for _, record := range s.Score(view, now) {
		records[record.Workload.Name] = record
	}

	// 1 + 600*0.1 = 61
	g.Expect(records["waited"].Effective).To(gomega.BeNumerically("~", 61, 1e-9))
	g.Expect(records["waited"].Effective).To(gomega.BeNumerically(">", records["fresh"].Effective))
	// the bonus stops growing at max aging time: 1 + 3600*0.1 = 361
	g.Expect(records["capped"].Effective).To(gomega.BeNumerically("~", 361, 1e-9))
	// clock skew never yields a negative bonus
	g.Expect(records["future"].AgingBonus).To(gomega.BeZero())
}

func TestScoreTierPrecedence(t *testing.T) {
	g := gomega.NewWithT(t)
	s := newScorer(t)
	now := time.Now()

	view := newView(&models.QueueInfo{Name: "q"})
	view.Pending = []*models.WorkloadInfo{
		pendingWorkload("fresh-urgent", "q", consts.TierUrgent, now),
		pendingWorkload("aged-normal", "q", consts.TierNormal, now.Add(-24*time.Hour)),
		pendingWorkload("aged-approved", "q", consts.TierApproved, now.Add(-24*time.Hour)),
	}

	records := make(map[string]*models.PriorityRecord)
	for _, record := range s.Score(view, now) {
		records[record.Workload.Name] = record
	}

	// a fully aged lower tier never overtakes a fresh higher tier
	g.Expect(records["fresh-urgent"].Priority).To(gomega.Equal(int64(1000)))
	g.Expect(records["aged-normal"].Priority).To(gomega.Equal(int64(361)))
	g.Expect(records["aged-approved"].Priority).To(gomega.Equal(int64(460)))
	g.Expect(records["fresh-urgent"].Effective).To(gomega.BeNumerically(">", records["aged-approved"].Effective))
}

func TestScoreFairnessPenalty(t *testing.T) {
	g := gomega.NewWithT(t)
	s := newScorer(t)
	now := time.Now()

	view := newView(
		&models.QueueInfo{Name: "busy", DominantShare: 10, DominantKind: consts.ResourceGPU},
		&models.QueueInfo{Name: "idle"},
	)
	view.Pending = []*models.WorkloadInfo{
		pendingWorkload("in-busy", "busy", consts.TierNormal, now),
		pendingWorkload("in-idle", "idle", consts.TierNormal, now),
		pendingWorkload("orphan", "gone", consts.TierNormal, now),
	}

	records := make(map[string]*models.PriorityRecord)
	for _, record := range s.Score(view, now) {
		records[record.Workload.Name] = record
	}

	// 1 - 10 = -9; the saturated queue's pending work goes negative
	g.Expect(records["in-busy"].Priority).To(gomega.Equal(int64(-9)))
	g.Expect(records["in-idle"].Priority).To(gomega.Equal(int64(1)))
	// unknown queue means no penalty can be computed
	g.Expect(records["orphan"].FairnessPenalty).To(gomega.BeZero())
}

func TestScorePodGroup(t *testing.T) {
	g := gomega.NewWithT(t)
	s := newScorer(t)
	now := time.Now()

	view := newView(&models.QueueInfo{Name: "q"})
	members := []*models.WorkloadInfo{
		pendingWorkload("worker-0", "q", consts.TierNormal, now),
		pendingWorkload("worker-1", "q", consts.TierUrgent, now.Add(-10*time.Minute)),
		pendingWorkload("worker-2", "q", consts.TierNormal, now.Add(-5*time.Minute)),
	}
	for _, member := range members {
		member.GroupName = "training"
	}
	view.Groups["team-a/training"] = &models.PodGroupInfo{
		Name:       "training",
		Namespace:  "team-a",
		TotalCount: 4,
		Members:    members,
	}

	records := s.Score(view, now)
	g.Expect(records).To(gomega.HaveLen(1))

	record := records[0]
	g.Expect(record.Group).NotTo(gomega.BeNil())
	// one urgent member makes the whole gang urgent, aged from the
	// earliest member: 1000 + 600*0.1 = 1060
	g.Expect(record.Tier).To(gomega.Equal(consts.TierUrgent))
	g.Expect(record.Priority).To(gomega.Equal(int64(1060)))
	// three of four declared members observed
	g.Expect(record.Schedulable).To(gomega.BeFalse())
	g.Expect(record.Targets()).To(gomega.HaveLen(3))
	g.Expect(record.Key()).To(gomega.Equal("podgroup:team-a/training"))
}

func TestScoreDeterministicOrder(t *testing.T) {
	g := gomega.NewWithT(t)
	s := newScorer(t)
	now := time.Now()

	view := newView(&models.QueueInfo{Name: "q"})
	view.Pending = []*models.WorkloadInfo{
		pendingWorkload("zz", "q", consts.TierNormal, now),
		pendingWorkload("aa", "q", consts.TierNormal, now),
	}

	records := s.Score(view, now)
	g.Expect(records).To(gomega.HaveLen(2))
	g.Expect(records[0].Key()).To(gomega.Equal("team-a/aa"))
	g.Expect(records[1].Key()).To(gomega.Equal("team-a/zz"))
}
