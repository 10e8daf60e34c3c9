package scoring

import (
	"strings"

	"github.com/Godmook/GPU-Controller/pkg/consts"
)

// tierRule maps one boolean annotation signal to a tier.
type tierRule struct {
	annotation string
	tier       string
}

// Ordered rule list, first match wins. Signals are not additive: exactly
// one tier is selected per workload.
var tierRules = []tierRule{
	{annotation: consts.AnnotationPriorityOverride, tier: consts.TierUrgent},
	{annotation: consts.AnnotationUrgent, tier: consts.TierUrgent},
	{annotation: consts.AnnotationHighPriority, tier: consts.TierUrgent},
	{annotation: consts.AnnotationApproved, tier: consts.TierApproved},
}

// ResolveTier resolves the declared tier of a workload from its
// annotations, defaulting to normal.
func ResolveTier(annotations map[string]string) string {
	for _, rule := range tierRules {
		if strings.EqualFold(annotations[rule.annotation], "true") {
			return rule.tier
		}
	}
	return consts.TierNormal
}
