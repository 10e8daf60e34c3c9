package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/Godmook/GPU-Controller/pkg/consts"
)

// Catalog is the immutable fairness configuration for one controller run:
// tracked resource kinds with their fairness weights, tier weights, aging
// parameters and reconciliation tuning. It is built once at startup and
// passed explicitly into every pipeline component.
type Catalog struct {
	kinds       []string
	kindWeights map[string]float64
	tierWeights map[string]float64

	AgingCoefficient     float64
	MaxAgingTime         time.Duration
	FairnessPenaltyScale float64
	PriorityDeadBand     int64
}

// canonical tie-break order for the built-in kinds; any additional
// configured kind follows alphabetically.
var defaultKindOrder = []string{
	consts.ResourceCPU,
	consts.ResourceMemory,
	consts.ResourceGPU,
	consts.ResourceGPUCores,
	consts.ResourceGPUMemPct,
}

// New builds a Catalog from options. Malformed weight or tier tables are
// a startup error: the process must not run with ambiguous fairness
// semantics.
func New(opts *Options) (*Catalog, error) {
	if len(opts.ResourceWeights) == 0 {
		return nil, fmt.Errorf("resource weight table cannot be empty")
	}
	for kind, weight := range opts.ResourceWeights {
		if kind == "" {
			return nil, fmt.Errorf("resource kind cannot be empty")
		}
		if weight < 0 {
			return nil, fmt.Errorf("resource %s has negative weight %v", kind, weight)
		}
	}
	for _, tier := range []string{consts.TierUrgent, consts.TierApproved, consts.TierNormal} {
		if _, ok := opts.TierWeights[tier]; !ok {
			return nil, fmt.Errorf("tier weight table is missing tier %s", tier)
		}
	}
	for tier := range opts.TierWeights {
		switch tier {
		case consts.TierUrgent, consts.TierApproved, consts.TierNormal:
		default:
			return nil, fmt.Errorf("unknown tier %s in tier weight table", tier)
		}
	}
	if opts.AgingCoefficient < 0 {
		return nil, fmt.Errorf("aging coefficient cannot be negative")
	}
	if opts.MaxAgingTime <= 0 {
		return nil, fmt.Errorf("max aging time must be positive")
	}
	if opts.PriorityDeadBand < 0 {
		return nil, fmt.Errorf("priority dead band cannot be negative")
	}

	return &Catalog{
		kinds:                orderedKinds(opts.ResourceWeights),
		kindWeights:          opts.ResourceWeights,
		tierWeights:          opts.TierWeights,
		AgingCoefficient:     opts.AgingCoefficient,
		MaxAgingTime:         opts.MaxAgingTime,
		FairnessPenaltyScale: opts.FairnessPenaltyScale,
		PriorityDeadBand:     opts.PriorityDeadBand,
	}, nil
}

// Kinds returns the tracked resource kinds in tie-break order.
func (c *Catalog) Kinds() []string {
	return c.kinds
}

// Tracks reports whether the kind participates in fairness math.
func (c *Catalog) Tracks(kind string) bool {
	_, ok := c.kindWeights[kind]
	return ok
}

// KindWeight returns the fairness weight of a tracked kind.
func (c *Catalog) KindWeight(kind string) float64 {
	return c.kindWeights[kind]
}

// TierWeight returns the configured weight for a tier.
func (c *Catalog) TierWeight(tier string) float64 {
	if weight, ok := c.tierWeights[tier]; ok {
		return weight
	}
	return c.tierWeights[consts.TierNormal]
}

func orderedKinds(weights map[string]float64) []string {
	kinds := make([]string, 0, len(weights))
	seen := make(map[string]struct{}, len(weights))
	for _, kind := range defaultKindOrder {
		if _, ok := weights[kind]; ok {
			kinds = append(kinds, kind)
			seen[kind] = struct{}{}
		}
	}
	extra := make([]string, 0)
	for kind := range weights {
		if _, ok := seen[kind]; !ok {
			extra = append(extra, kind)
		}
	}
	sort.Strings(extra)
	return append(kinds, extra...)
}
