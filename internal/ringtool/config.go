package ringtool

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default ports the Swift servers listen on, per ring type.
const (
	AccountPort   = 6202
	ContainerPort = 6201
	ObjectPort    = 6200
)

// RingType is one of the rings managed by the tool.
type RingType struct {
	Name string
	Port int
}

// DefaultRingTypes are the three standard Swift rings.
var DefaultRingTypes = []RingType{
	{Name: "account", Port: AccountPort},
	{Name: "container", Port: ContainerPort},
	{Name: "object", Port: ObjectPort},
}

// OwnerRef identifies the object the ring ConfigMap should be owned by.
// All fields must be set for the owner reference to be attached.
type OwnerRef struct {
	APIVersion string
	Kind       string
	Name       string
	UID        string
}

// Valid returns true if the reference is complete enough to attach.
func (o OwnerRef) Valid() bool {
	return o.APIVersion != "" && o.Kind != "" && o.Name != "" && o.UID != ""
}

// Config holds the environment-driven settings of the ring tool.
type Config struct {
	Namespace     string
	ConfigMapName string
	ConfigMapKey  string
	Owner         OwnerRef

	PartPower    int64
	Replicas     int64
	MinPartHours int64

	RingTypes   []RingType
	DevicesFile string
	RingDir     string
	BuilderBin  string
}

// ConfigFromEnv reads the tool configuration from the environment.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Namespace:     os.Getenv("NAMESPACE"),
		ConfigMapName: envOrDefault("RING_CONFIGMAP", "swift-ring-files"),
		ConfigMapKey:  envOrDefault("RING_CONFIGMAP_KEY", "swift-rings.tar.gz"),
		Owner: OwnerRef{
			APIVersion: os.Getenv("SWIFT_RING_OWNER_API_VERSION"),
			Kind:       os.Getenv("SWIFT_RING_OWNER_KIND"),
			Name:       os.Getenv("SWIFT_RING_OWNER_NAME"),
			UID:        os.Getenv("SWIFT_RING_OWNER_UID"),
		},
		DevicesFile: envOrDefault("SWIFT_DEVICES_FILE", "/var/lib/config-data/ring-devices/devices.txt"),
		RingDir:     envOrDefault("SWIFT_RING_DIR", "/etc/swift"),
		BuilderBin:  envOrDefault("SWIFT_RING_BUILDER", "swift-ring-builder"),
	}

	if cfg.Namespace == "" {
		return Config{}, fmt.Errorf("NAMESPACE must be set")
	}

	var err error
	if cfg.PartPower, err = envInt("SWIFT_PART_POWER", 10); err != nil {
		return Config{}, err
	}
	if cfg.Replicas, err = envInt("SWIFT_REPLICAS", 3); err != nil {
		return Config{}, err
	}
	if cfg.MinPartHours, err = envInt("SWIFT_MIN_PART_HOURS", 1); err != nil {
		return Config{}, err
	}

	if cfg.RingTypes, err = parseRingTypes(envOrDefault("SWIFT_RING_TYPES", "account,container,object")); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func parseRingTypes(s string) ([]RingType, error) {
	known := map[string]int{
		"account":   AccountPort,
		"container": ContainerPort,
		"object":    ObjectPort,
	}
	var types []RingType
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		port, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("unknown ring type %q", name)
		}
		types = append(types, RingType{Name: name, Port: port})
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("SWIFT_RING_TYPES selects no rings")
	}
	return types, nil
}
