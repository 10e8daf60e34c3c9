package models

import (
	"time"

	"github.com/Godmook/GPU-Controller/pkg/consts"
)

// ResourceAmounts is a per-kind resource vector.
type ResourceAmounts map[string]float64

// Add accumulates other into r.
func (r ResourceAmounts) Add(other ResourceAmounts) {
	for kind, amount := range other {
		r[kind] += amount
	}
}

// QueueInfo is the per-queue slice of the resource view: nominal capacity
// (own quota with cohort fallback) and usage recomputed from admitted
// workloads. Kinds with no quota anywhere are absent from Capacity and
// excluded from the fairness denominator.
type QueueInfo struct {
	Name     string
	Cohort   string
	Capacity ResourceAmounts
	Usage    ResourceAmounts

	// filled by the dominant share calculator
	DominantShare float64
	DominantKind  string
}

// WorkloadInfo is the per-workload metadata the scorer consumes.
type WorkloadInfo struct {
	Name            string
	Namespace       string
	Queue           string
	Phase           string
	Tier            string
	ResourceVersion string
	SubmissionTime  time.Time

	// Requests holds tracked kinds; Untracked preserves kinds outside the
	// catalog for display only.
	Requests  ResourceAmounts
	Untracked ResourceAmounts

	GroupName string

	// ObservedPriority is the priority value last seen in the external
	// system within this snapshot, nil when never set.
	ObservedPriority *int64
}

// Key returns namespace/name.
func (w *WorkloadInfo) Key() string {
	return w.Namespace + "/" + w.Name
}

// Pending ...
func (w *WorkloadInfo) Pending() bool {
	return w.Phase == consts.WorkloadPending
}

// PodGroupInfo is a gang-scheduled set of workloads scored as one unit.
type PodGroupInfo struct {
	Name       string
	Namespace  string
	TotalCount int
	Members    []*WorkloadInfo
	Requests   ResourceAmounts
}

// Complete reports whether all declared members have been observed.
func (g *PodGroupInfo) Complete() bool {
	return g.TotalCount > 0 && len(g.Members) >= g.TotalCount
}

// Key returns namespace/name.
func (g *PodGroupInfo) Key() string {
	return g.Namespace + "/" + g.Name
}

// ResourceView is the immutable point-in-time view one cycle scores
// against. It is built fresh each cycle and discarded at cycle end; no
// cross-cycle mutation.
type ResourceView struct {
	Queues map[string]*QueueInfo
	// Pending holds pending workloads outside any pod group.
	Pending []*WorkloadInfo
	// Groups holds pending pod groups keyed by namespace/name.
	Groups map[string]*PodGroupInfo
}

// PriorityRecord is one computed effective priority with its contributing
// terms, covering a single workload or all members of a pod group.
type PriorityRecord struct {
	Workload *WorkloadInfo
	Group    *PodGroupInfo

	Tier            string
	TierWeight      float64
	AgingBonus      float64
	FairnessPenalty float64
	Effective       float64
	// Priority is Effective rounded to the external integral granularity.
	Priority int64

	// Schedulable is false for incomplete pod groups. Informational only;
	// placement is outside this controller.
	Schedulable bool
}

// Targets returns the workloads the record's priority applies to. All
// group members receive the identical value.
func (r *PriorityRecord) Targets() []*WorkloadInfo {
	if r.Group != nil {
		return r.Group.Members
	}
	return []*WorkloadInfo{r.Workload}
}

// Key identifies the scored unit.
func (r *PriorityRecord) Key() string {
	if r.Group != nil {
		return "podgroup:" + r.Group.Key()
	}
	return r.Workload.Key()
}
