package consts

// Component is the component name
const Component = "wdrf-controller"

// workload lifecycle phases, derived from workload conditions
const (
	WorkloadPending  = "Pending"
	WorkloadAdmitted = "Admitted"
	WorkloadFinished = "Finished"
	WorkloadFailed   = "Failed"
)

// priority tiers
const (
	TierUrgent   = "urgent"
	TierApproved = "approved"
	TierNormal   = "normal"
)

// tier signal annotations on workloads, boolean-valued
const (
	AnnotationPriorityOverride = "wdrf.x-k8s.io/priority-override"
	AnnotationUrgent           = "wdrf.x-k8s.io/urgent"
	AnnotationHighPriority     = "wdrf.x-k8s.io/high-priority"
	AnnotationApproved         = "wdrf.x-k8s.io/approved"
)

// pod-group markers on workloads
const (
	LabelPodGroupName            = "kueue.x-k8s.io/pod-group-name"
	AnnotationPodGroupTotalCount = "kueue.x-k8s.io/pod-group-total-count"
)

// tracked resource kinds
const (
	ResourceCPU       = "cpu"
	ResourceMemory    = "memory"
	ResourceGPU       = "nvidia.com/gpu"
	ResourceGPUCores  = "nvidia.com/gpucores"
	ResourceGPUMemPct = "nvidia.com/gpumem-percentage"
)

// workload condition types and reasons
const (
	ConditionAdmitted = "Admitted"
	ConditionFinished = "Finished"

	ReasonSucceeded = "Succeeded"
	ReasonFailed    = "Failed"
)
