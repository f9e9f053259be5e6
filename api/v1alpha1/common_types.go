package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ConditionType represents the type of a status condition.
type ConditionType string

const (
	// ConditionReady indicates the resource is fully operational.
	ConditionReady ConditionType = "Ready"

	// ConditionRingSyncReady indicates the ring files have been built and
	// stored.
	ConditionRingSyncReady ConditionType = "RingSyncReady"
)

// CommonStatus contains status fields shared by all CRs of this operator.
type CommonStatus struct {
	// Conditions represent the latest available observations of the resource's state.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`

	// ObservedGeneration is the most recent generation observed by the controller.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}
