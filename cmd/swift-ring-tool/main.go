// swift-ring-tool manages the Swift ring file lifecycle from inside the
// cluster: it fetches the ring tarball from a ConfigMap, drives
// swift-ring-builder over a local working directory, and pushes the result
// back.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/mrrauch/swift-ring-operator/internal/common"
	"github.com/mrrauch/swift-ring-operator/internal/ringtool"
)

const usage = `usage: swift-ring-tool {get|init|update|rebalance|forced_rebalance|push|all}`

func main() {
	var devicesFile, ringDir string
	pflag.StringVar(&devicesFile, "devices-file", "", "Override SWIFT_DEVICES_FILE.")
	pflag.StringVar(&ringDir, "ring-dir", "", "Override SWIFT_RING_DIR.")
	pflag.Parse()

	logger := zap.New(zap.UseDevMode(false))
	ctrl.SetLogger(logger)

	args := pflag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := ringtool.ConfigFromEnv()
	if err != nil {
		logger.Error(err, "invalid configuration")
		os.Exit(1)
	}
	if devicesFile != "" {
		cfg.DevicesFile = devicesFile
	}
	if ringDir != "" {
		cfg.RingDir = ringDir
	}

	restCfg, err := ctrl.GetConfig()
	if err != nil {
		logger.Error(err, "unable to load cluster config")
		os.Exit(1)
	}
	c, err := client.New(restCfg, client.Options{Scheme: common.SetupScheme()})
	if err != nil {
		logger.Error(err, "unable to create client")
		os.Exit(1)
	}

	tool := ringtool.New(cfg, c, logger)
	ctx := context.Background()

	switch args[0] {
	case "get":
		err = tool.Get(ctx)
	case "init":
		err = tool.Init(ctx)
	case "update":
		err = tool.Update(ctx)
	case "rebalance":
		err = tool.Rebalance(ctx, false)
	case "forced_rebalance":
		err = tool.Rebalance(ctx, true)
	case "push":
		err = tool.Push(ctx)
	case "all":
		err = tool.All(ctx)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Error(err, "operation failed", "operation", args[0])
		os.Exit(1)
	}
}
