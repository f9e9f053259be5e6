package common

import (
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"

	swiftv1alpha1 "github.com/mrrauch/swift-ring-operator/api/v1alpha1"
)

// SetupScheme returns a runtime.Scheme with core K8s and SwiftRing types registered.
func SetupScheme() *runtime.Scheme {
	s := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(s))
	utilruntime.Must(swiftv1alpha1.AddToScheme(s))
	return s
}
