package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-corestorage/pkg/corestorage"
)

// checkHost runs every read-only query against the local machine's diskutil
// and prints what it finds. It never unlocks or reverts anything.
func checkHost(ctx context.Context, client *corestorage.Client) error {
	fmt.Printf("=== Boot Volume ===\n")
	fmt.Printf("Encrypted: %t\n", client.IsBootVolumeEncrypted(ctx))

	fmt.Printf("\n=== Recovery Partition ===\n")
	if path, ok := client.GetRecoveryPartition(ctx); ok {
		fmt.Printf("✓ Found: %s\n", path)
	} else {
		fmt.Printf("Not found on disk0\n")
	}

	fmt.Printf("\n=== CoreStorage State ===\n")
	start := time.Now()
	state, encrypted, plain, err := client.GetStateAndVolumeIds(ctx)
	if err != nil {
		return fmt.Errorf("failed to query corestorage state: %w", err)
	}
	fmt.Printf("State: %s (%s)\n", state, time.Since(start).Round(time.Millisecond))

	printVolumes := func(title string, ids []string) {
		fmt.Printf("\n%s (%d):\n", title, len(ids))
		for _, id := range ids {
			size, err := client.GetVolumeSizeReadable(ctx, id)
			if err != nil {
				fmt.Printf("  %s  size unavailable: %v\n", id, err)
				continue
			}
			fmt.Printf("  %s  %s\n", id, size)
		}
	}
	printVolumes("Encrypted volumes", encrypted)
	printVolumes("Unencrypted volumes", plain)

	return nil
}

func main() {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	if len(os.Args) > 1 && os.Args[1] == "-v" {
		logger.SetLevel(log.DebugLevel)
	}

	client := corestorage.NewDefaultClient(logger)
	if _, err := os.Stat(client.DiskutilPath()); err != nil {
		fmt.Printf("diskutil not available at %s, this check only runs on macOS\n", client.DiskutilPath())
		os.Exit(0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := checkHost(ctx, client); err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n✓ All queries completed\n")
}
