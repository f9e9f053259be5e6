package ringtool

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/go-logr/logr"
)

// Runner executes an external command and returns its exit code and combined
// output. A non-zero exit code is not an error; err is reserved for failures
// to run the command at all.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (int, []byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir, name string, args ...string) (int, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), out, nil
		}
		return -1, out, err
	}
	return 0, out, nil
}

// Builder invokes swift-ring-builder subcommands against builder files in a
// working directory. The tool itself is treated as a black box; only exit
// codes are interpreted.
type Builder struct {
	bin    string
	dir    string
	runner Runner
	log    logr.Logger
}

// NewBuilder returns a Builder invoking bin with builder files under dir.
func NewBuilder(bin, dir string, log logr.Logger) *Builder {
	return &Builder{bin: bin, dir: dir, runner: execRunner{}, log: log}
}

func (b *Builder) run(ctx context.Context, args ...string) (int, []byte, error) {
	b.log.V(1).Info("running ring builder", "bin", b.bin, "args", args)
	code, out, err := b.runner.Run(ctx, b.dir, b.bin, args...)
	if err != nil {
		return code, out, fmt.Errorf("%s %v: %w", b.bin, args, err)
	}
	return code, out, nil
}

func builderFile(rt RingType) string {
	return rt.Name + ".builder"
}

// Create initializes a new builder file for the ring type.
func (b *Builder) Create(ctx context.Context, rt RingType, partPower, replicas, minPartHours int64) error {
	code, out, err := b.run(ctx, builderFile(rt), "create",
		strconv.FormatInt(partPower, 10),
		strconv.FormatInt(replicas, 10),
		strconv.FormatInt(minPartHours, 10))
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("create %s ring failed (exit %d): %s", rt.Name, code, out)
	}
	return nil
}

// Search reports whether the device is already present in the ring.
func (b *Builder) Search(ctx context.Context, rt RingType, location string) (bool, error) {
	code, _, err := b.run(ctx, builderFile(rt), "search", location)
	if err != nil {
		return false, err
	}
	// Any non-zero exit means no matching device.
	return code == 0, nil
}

// Add adds a device at the given endpoint with the given weight.
func (b *Builder) Add(ctx context.Context, rt RingType, endpoint, weight string) error {
	code, out, err := b.run(ctx, builderFile(rt), "add", endpoint, weight)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("add %s to %s ring failed (exit %d): %s", endpoint, rt.Name, code, out)
	}
	return nil
}

// SetWeight sets the weight of an existing device.
func (b *Builder) SetWeight(ctx context.Context, rt RingType, location, weight string) error {
	code, out, err := b.run(ctx, builderFile(rt), "set_weight", location, weight)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("set_weight %s on %s ring failed (exit %d): %s", location, rt.Name, code, out)
	}
	return nil
}

// Rebalance rebalances the ring and writes a new ring file. Exit code 1
// means no partitions were moved, which is not an error.
func (b *Builder) Rebalance(ctx context.Context, rt RingType) error {
	code, out, err := b.run(ctx, builderFile(rt), "rebalance")
	if err != nil {
		return err
	}
	if code != 0 && code != 1 {
		return fmt.Errorf("rebalance %s ring failed (exit %d): %s", rt.Name, code, out)
	}
	return nil
}

// PretendMinPartHoursPassed clears the per-partition move cooldown so the
// next rebalance may move everything.
func (b *Builder) PretendMinPartHoursPassed(ctx context.Context, rt RingType) error {
	code, out, err := b.run(ctx, builderFile(rt), "pretend_min_part_hours_passed")
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("pretend_min_part_hours_passed on %s ring failed (exit %d): %s", rt.Name, code, out)
	}
	return nil
}
