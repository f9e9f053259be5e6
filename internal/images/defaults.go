package images

// Default container images for ring management.
// Images are from the Kolla project for the 2025.1 (Epoxy) release; the
// swift-base image carries the swift-ring-builder utility.
const (
	DefaultSwiftRingTool = "quay.io/openstack.kolla/swift-base:2025.1"
)

// ImageOrDefault returns the image if non-empty, otherwise the defaultImage.
func ImageOrDefault(image, defaultImage string) string {
	if image != "" {
		return image
	}
	return defaultImage
}
