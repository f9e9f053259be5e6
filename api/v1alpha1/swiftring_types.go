package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// RingDevice describes a single storage device that should be present in the rings.
type RingDevice struct {
	// Region is the Swift region number of the device.
	// +kubebuilder:default=1
	// +optional
	Region int32 `json:"region,omitempty"`

	// Zone is the Swift zone number of the device.
	// +kubebuilder:default=1
	// +optional
	Zone int32 `json:"zone,omitempty"`

	// Host is the storage node address the device belongs to.
	Host string `json:"host"`

	// Device is the block device name on the host (e.g. "d0", "sdb").
	Device string `json:"device"`

	// Weight is the relative capacity weight assigned to the device.
	// +kubebuilder:default="100.0"
	// +optional
	Weight string `json:"weight,omitempty"`
}

// SwiftRingSpec defines the desired state of the Swift rings.
type SwiftRingSpec struct {
	// PartPower is the partition power of the rings.
	// +kubebuilder:default=10
	// +kubebuilder:validation:Minimum=1
	// +optional
	PartPower *int64 `json:"partPower,omitempty"`

	// RingReplicas is the number of data replicas (= copies) in the rings.
	// +kubebuilder:default=3
	// +kubebuilder:validation:Minimum=1
	// +optional
	RingReplicas *int64 `json:"ringReplicas,omitempty"`

	// MinPartHours restricts moving a partition more than once within the
	// given number of hours.
	// +kubebuilder:default=1
	// +kubebuilder:validation:Minimum=1
	// +optional
	MinPartHours *int64 `json:"minPartHours,omitempty"`

	// Devices lists the storage devices the rings should be built from.
	// +optional
	Devices []RingDevice `json:"devices,omitempty"`

	// RingConfigMap is the name of the ConfigMap the ring tarball is stored
	// in. Defaults to "<name>-ring-files".
	// +optional
	RingConfigMap string `json:"ringConfigMap,omitempty"`

	// SwiftConfSecret is the name of the Secret holding the swift hash path
	// values. The operator generates it if left empty.
	// +optional
	SwiftConfSecret string `json:"swiftConfSecret,omitempty"`

	// Image is the container image used for the ring-sync job. If empty, the
	// operator default is used.
	// +optional
	Image string `json:"image,omitempty"`
}

// SwiftRingStatus defines the observed state of SwiftRing.
type SwiftRingStatus struct {
	CommonStatus `json:",inline"`

	// DeviceCount is the number of devices from the spec that were applied to
	// the rings on the last completed sync.
	// +optional
	DeviceCount int32 `json:"deviceCount,omitempty"`

	// LastSyncTime is when the last ring-sync job completed.
	// +optional
	LastSyncTime *metav1.Time `json:"lastSyncTime,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Devices",type=integer,JSONPath=`.status.deviceCount`
// +kubebuilder:printcolumn:name="Ready",type=string,JSONPath=`.status.conditions[?(@.type=="Ready")].status`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// SwiftRing is the Schema for the swiftrings API.
type SwiftRing struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SwiftRingSpec   `json:"spec,omitempty"`
	Status SwiftRingStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// SwiftRingList contains a list of SwiftRing.
type SwiftRingList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SwiftRing `json:"items"`
}

func init() {
	SchemeBuilder.Register(&SwiftRing{}, &SwiftRingList{})
}
