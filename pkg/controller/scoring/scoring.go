package scoring

import (
	"sort"
	"time"

	"github.com/Godmook/GPU-Controller/pkg/controller/catalog"
	"github.com/Godmook/GPU-Controller/pkg/controller/models"
	"github.com/Godmook/GPU-Controller/pkg/utils"
)

// Scorer computes effective priorities for pending workloads and pod
// groups: tierWeight + agingBonus - fairnessPenalty. The fairness penalty
// is the owning queue's current dominant share, so a queue saturating a
// scarce weighted resource depresses its own pending work while the aging
// bonus guarantees nothing starves forever.
type Scorer struct {
	cat *catalog.Catalog
}

// New ...
func New(cat *catalog.Catalog) *Scorer {
	return &Scorer{cat: cat}
}

// Score produces one PriorityRecord per pending workload, and exactly one
// per pod group: gang semantics forbid promoting a subset of a group, so
// every member receives the identical score.
func (s *Scorer) Score(view *models.ResourceView, now time.Time) []*models.PriorityRecord {
	records := make([]*models.PriorityRecord, 0, len(view.Pending)+len(view.Groups))

	for _, workload := range view.Pending {
		record := s.score(view, workload.Queue, workload.Tier, workload.SubmissionTime, now)
		record.Workload = workload
		record.Schedulable = true
		records = append(records, record)
	}

	for _, group := range view.Groups {
		tier, submitted := groupTierAndSubmission(s.cat, group)
		record := s.score(view, group.Members[0].Queue, tier, submitted, now)
		record.Group = group
		// incomplete groups are scored but are not placement-ready
		record.Schedulable = group.Complete()
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Key() < records[j].Key() })
	return records
}

func (s *Scorer) score(view *models.ResourceView, queueName, tier string, submitted, now time.Time) *models.PriorityRecord {
	waitSeconds := now.Sub(submitted).Seconds()
	if waitSeconds < 0 {
		waitSeconds = 0
	}
	maxAging := s.cat.MaxAgingTime.Seconds()
	if waitSeconds > maxAging {
		waitSeconds = maxAging
	}
	agingBonus := waitSeconds * s.cat.AgingCoefficient

	tierWeight := s.cat.TierWeight(tier)

	// no penalty can be computed for an unknown queue or one with no
	// tracked positive-capacity kind
	fairnessPenalty := 0.0
	if queue, ok := view.Queues[queueName]; ok {
		fairnessPenalty = queue.DominantShare * s.cat.FairnessPenaltyScale
	}

	effective := tierWeight + agingBonus - fairnessPenalty
	return &models.PriorityRecord{
		Tier:            tier,
		TierWeight:      tierWeight,
		AgingBonus:      agingBonus,
		FairnessPenalty: fairnessPenalty,
		Effective:       effective,
		Priority:        utils.RoundHalfAwayFromZero(effective),
	}
}

// groupTierAndSubmission picks the group's tier as the highest-weighted
// member tier (a gang with one urgent member is urgent as a unit) and its
// submission time as the earliest member's, so group aging tracks the
// oldest waiter.
func groupTierAndSubmission(cat *catalog.Catalog, group *models.PodGroupInfo) (string, time.Time) {
	tier := group.Members[0].Tier
	submitted := group.Members[0].SubmissionTime
	for _, member := range group.Members[1:] {
		if cat.TierWeight(member.Tier) > cat.TierWeight(tier) {
			tier = member.Tier
		}
		if member.SubmissionTime.Before(submitted) {
			submitted = member.SubmissionTime
		}
	}
	return tier, submitted
}
