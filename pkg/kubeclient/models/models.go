package models

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ObjectMeta is the subset of object metadata this controller reads.
type ObjectMeta struct {
	Name              string            `json:"name"`
	Namespace         string            `json:"namespace,omitempty"`
	ResourceVersion   string            `json:"resourceVersion,omitempty"`
	CreationTimestamp metav1.Time       `json:"creationTimestamp,omitempty"`
	Labels            map[string]string `json:"labels,omitempty"`
	Annotations       map[string]string `json:"annotations,omitempty"`
}

// ListMeta ...
type ListMeta struct {
	Continue string `json:"continue,omitempty"`
}

// Queue is a cluster queue object: nominal per-kind quota plus an optional
// cohort it borrows from.
type Queue struct {
	Metadata ObjectMeta `json:"metadata"`
	Spec     QueueSpec  `json:"spec"`
}

// QueueSpec ...
type QueueSpec struct {
	Cohort string              `json:"cohort,omitempty"`
	Quotas corev1.ResourceList `json:"quotas,omitempty"`
}

// Cohort is a shared capacity pool multiple queues may borrow from.
type Cohort struct {
	Metadata ObjectMeta `json:"metadata"`
	Spec     CohortSpec `json:"spec"`
}

// CohortSpec ...
type CohortSpec struct {
	Quotas corev1.ResourceList `json:"quotas,omitempty"`
}

// Workload is a queued workload object.
type Workload struct {
	Metadata ObjectMeta     `json:"metadata"`
	Spec     WorkloadSpec   `json:"spec"`
	Status   WorkloadStatus `json:"status,omitempty"`
}

// WorkloadSpec ...
type WorkloadSpec struct {
	QueueName string   `json:"queueName"`
	Priority  *int64   `json:"priority,omitempty"`
	PodSets   []PodSet `json:"podSets,omitempty"`
}

// PodSet ...
type PodSet struct {
	Count    int32               `json:"count"`
	Requests corev1.ResourceList `json:"requests,omitempty"`
}

// WorkloadStatus ...
type WorkloadStatus struct {
	Conditions []WorkloadCondition `json:"conditions,omitempty"`
}

// WorkloadCondition ...
type WorkloadCondition struct {
	Type   string `json:"type"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// ListQueuesRequest ...
type ListQueuesRequest struct {
	Limit    int64  `query:"limit"`
	Continue string `query:"continue"`
}

// ListQueuesResponse ...
type ListQueuesResponse struct {
	Metadata ListMeta `json:"metadata,omitempty"`
	Items    []*Queue `json:"items"`
}

// GetCohortRequest ...
type GetCohortRequest struct {
	Name string `json:"-"`
}

// GetCohortResponse ...
type GetCohortResponse struct {
	Cohort
}

// ListWorkloadsRequest ...
type ListWorkloadsRequest struct {
	LabelSelector string `query:"labelSelector"`
	Limit         int64  `query:"limit"`
	Continue      string `query:"continue"`
}

// ListWorkloadsResponse ...
type ListWorkloadsResponse struct {
	Metadata ListMeta    `json:"metadata,omitempty"`
	Items    []*Workload `json:"items"`
}

// UpdateWorkloadPriorityRequest is the version-conditioned priority write.
// The write is rejected with a conflict when ResourceVersion is stale.
type UpdateWorkloadPriorityRequest struct {
	Namespace       string `json:"-"`
	Name            string `json:"-"`
	ResourceVersion string `json:"resourceVersion"`
	Priority        int64  `json:"priority"`
}

// UpdateWorkloadPriorityResponse ...
type UpdateWorkloadPriorityResponse struct {
	Metadata ObjectMeta `json:"metadata,omitempty"`
}
