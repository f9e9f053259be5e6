// Package ringtool coordinates the Swift ring-file lifecycle: fetch the ring
// tarball from the cluster, drive swift-ring-builder over a local working
// directory, and push the result back. All ring placement math belongs to
// the external binary.
package ringtool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	apitypes "k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/mrrauch/swift-ring-operator/internal/store"
)

// Tool runs the ring lifecycle operations against one working directory.
type Tool struct {
	cfg     Config
	store   *store.RingStore
	builder *Builder
	log     logr.Logger
}

// New returns a Tool using the given API client for ring persistence.
func New(cfg Config, c client.Client, log logr.Logger) *Tool {
	s := &store.RingStore{
		Client:    c,
		Namespace: cfg.Namespace,
		Name:      cfg.ConfigMapName,
		Key:       cfg.ConfigMapKey,
	}
	if cfg.Owner.Valid() {
		s.Owner = &metav1.OwnerReference{
			APIVersion: cfg.Owner.APIVersion,
			Kind:       cfg.Owner.Kind,
			Name:       cfg.Owner.Name,
			UID:        apitypes.UID(cfg.Owner.UID),
		}
	}
	return &Tool{
		cfg:     cfg,
		store:   s,
		builder: NewBuilder(cfg.BuilderBin, cfg.RingDir, log),
		log:     log,
	}
}

// Get fetches the ring tarball and unpacks it into the working directory.
// A missing ConfigMap leaves the directory untouched so a fresh set of rings
// can be initialized.
func (t *Tool) Get(ctx context.Context) error {
	data, found, err := t.store.Fetch(ctx)
	if err != nil {
		return err
	}
	if !found {
		t.log.Info("no existing ring files", "configmap", t.cfg.ConfigMapName)
		return nil
	}
	if err := os.MkdirAll(t.cfg.RingDir, 0o755); err != nil {
		return err
	}
	if err := Unpack(data, t.cfg.RingDir); err != nil {
		return err
	}
	t.log.Info("fetched ring files", "configmap", t.cfg.ConfigMapName, "bytes", len(data))
	return nil
}

// Init creates builder files for any ring type that does not have one yet.
func (t *Tool) Init(ctx context.Context) error {
	if err := os.MkdirAll(t.cfg.RingDir, 0o755); err != nil {
		return err
	}
	for _, rt := range t.cfg.RingTypes {
		path := filepath.Join(t.cfg.RingDir, builderFile(rt))
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return err
		}
		t.log.Info("creating builder", "ring", rt.Name,
			"partPower", t.cfg.PartPower, "replicas", t.cfg.Replicas, "minPartHours", t.cfg.MinPartHours)
		if err := t.builder.Create(ctx, rt, t.cfg.PartPower, t.cfg.Replicas, t.cfg.MinPartHours); err != nil {
			return err
		}
	}
	return nil
}

// Update applies the devices file to every ring: unknown devices are added,
// known devices get their weight set.
func (t *Tool) Update(ctx context.Context) error {
	devices, err := ParseDevicesFile(t.cfg.DevicesFile)
	if err != nil {
		return err
	}
	for _, rt := range t.cfg.RingTypes {
		for _, dev := range devices {
			found, err := t.builder.Search(ctx, rt, dev.Location())
			if err != nil {
				return err
			}
			if !found {
				t.log.Info("adding device", "ring", rt.Name, "device", dev.Location(), "weight", dev.Weight)
				if err := t.builder.Add(ctx, rt, dev.Endpoint(rt), dev.Weight); err != nil {
					return err
				}
				continue
			}
			if err := t.builder.SetWeight(ctx, rt, dev.Location(), dev.Weight); err != nil {
				return err
			}
		}
	}
	t.log.Info("applied devices", "count", len(devices))
	return nil
}

// Rebalance rebalances every ring. With force set, the min-part-hours
// cooldown is cleared first.
func (t *Tool) Rebalance(ctx context.Context, force bool) error {
	for _, rt := range t.cfg.RingTypes {
		if force {
			if err := t.builder.PretendMinPartHoursPassed(ctx, rt); err != nil {
				return err
			}
		}
		if err := t.builder.Rebalance(ctx, rt); err != nil {
			return err
		}
		t.log.Info("rebalanced", "ring", rt.Name, "forced", force)
	}
	return nil
}

// Push packs the working directory and stores it in the ring ConfigMap.
func (t *Tool) Push(ctx context.Context) error {
	if _, err := os.Stat(t.cfg.RingDir); err != nil {
		return fmt.Errorf("ring directory: %w", err)
	}
	data, err := Pack(t.cfg.RingDir)
	if err != nil {
		return err
	}
	if err := t.store.Push(ctx, data); err != nil {
		return err
	}
	t.log.Info("pushed ring files", "configmap", t.cfg.ConfigMapName, "bytes", len(data))
	return nil
}

// All runs the full cycle: get, init, update, rebalance, push.
func (t *Tool) All(ctx context.Context) error {
	if err := t.Get(ctx); err != nil {
		return err
	}
	if err := t.Init(ctx); err != nil {
		return err
	}
	if err := t.Update(ctx); err != nil {
		return err
	}
	if err := t.Rebalance(ctx, false); err != nil {
		return err
	}
	return t.Push(ctx)
}
