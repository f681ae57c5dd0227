package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mkozlowski/cleansweep/internal/catalog"
	"github.com/mkozlowski/cleansweep/internal/config"
	"github.com/mkozlowski/cleansweep/internal/engine"
	"github.com/mkozlowski/cleansweep/internal/sysinfo"
	"github.com/mkozlowski/cleansweep/pkg/size"
)

// CleanCmd runs cleaners without the TUI, for scripts and cron.
var CleanCmd = &cobra.Command{
	Use:   "clean [cleaners...]",
	Short: "Clean without the interactive interface",
	Long:  `Run the named cleaners, or every enabled cleaner with --all.`,
	RunE:  runClean,
}

func init() {
	CleanCmd.Flags().Bool("all", false, "Run all enabled cleaners")
	CleanCmd.Flags().Bool("force", false, "Skip confirmation prompt")
	CleanCmd.Flags().Bool("quiet", false, "Minimal output")
	CleanCmd.Flags().String("min-report", "", "Only report cleaners that freed at least this much (e.g. 10MB)")
}

func runClean(cmd *cobra.Command, args []string) error {
	allFlag, _ := cmd.Flags().GetBool("all")
	force, _ := cmd.Flags().GetBool("force")
	quiet, _ := cmd.Flags().GetBool("quiet")
	minReport, _ := cmd.Flags().GetString("min-report")

	return runCleanWithLoader(config.NewLoader(), args, allFlag, force, quiet, minReport, os.Stdin)
}

func runCleanWithLoader(loader *config.Loader, args []string, allFlag, force, quiet bool, minReport string, stdin *os.File) error {
	cfg, _, err := loader.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var minBytes uint64
	if minReport != "" {
		minBytes, err = size.ParseSize(minReport)
		if err != nil {
			return fmt.Errorf("parse --min-report: %w", err)
		}
	}

	cat := catalog.Build(cfg)
	items, err := resolveItems(cat, args, allFlag)
	if err != nil {
		return err
	}

	if !force {
		if !confirmClean(items, stdin) {
			fmt.Println("Aborted")
			return nil
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return executeClean(ctx, items, quiet, minBytes)
}

// resolveItems maps cleaner names to runnable items, in catalog order.
func resolveItems(cat catalog.Catalog, args []string, allFlag bool) ([]*engine.Item, error) {
	sel := engine.NewSelection(cat)

	if len(args) == 0 && !allFlag {
		return nil, fmt.Errorf("specify cleaners or use --all\nAvailable: %s",
			strings.Join(cat.ItemNames(), ", "))
	}

	if allFlag {
		for _, it := range sel.AllItems() {
			it.Selected = true
		}
		return sel.SelectedItems(), nil
	}

	wanted := make(map[string]bool, len(args))
	for _, name := range args {
		wanted[name] = true
	}

	var invalid []string
	for _, name := range args {
		if _, ok := cat.Find(name); !ok {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("unknown cleaners: %s\nAvailable: %s",
			strings.Join(invalid, ", "), strings.Join(cat.ItemNames(), ", "))
	}

	for _, it := range sel.AllItems() {
		it.Selected = wanted[it.Catalog.Name]
	}
	return sel.SelectedItems(), nil
}

func confirmClean(items []*engine.Item, stdin *os.File) bool {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Catalog.Name
	}

	fmt.Printf("Clean %d cleaner(s): %s? [y/N]: ", len(items), strings.Join(names, ", "))

	reader := bufio.NewReader(stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes"
}

// executeClean drives one engine run to completion on the calling
// goroutine, cancelling between items when the context ends.
func executeClean(ctx context.Context, items []*engine.Item, quiet bool, minBytes uint64) error {
	eng := engine.New()
	if err := eng.Start(items, sysinfo.Privileged()); err != nil {
		return err
	}

	for eng.State() == engine.StateRunning {
		select {
		case <-ctx.Done():
			eng.Cancel()
		default:
		}

		it := eng.Next()
		if it == nil {
			break
		}

		if !quiet {
			fmt.Printf("Cleaning %s... ", it.Catalog.Name)
		}

		result, err := it.Catalog.Action(ctx)
		eng.Finish(it, result, err)

		if quiet {
			continue
		}
		switch it.Status {
		case engine.StatusSuccess:
			if it.BytesFreed >= minBytes {
				fmt.Printf("done (freed %s)\n", size.FormatSize(it.BytesFreed))
			} else {
				fmt.Println("done")
			}
		case engine.StatusFailed:
			fmt.Printf("error: %s\n", it.FailReason)
		}
	}

	run := eng.Run()
	if quiet {
		fmt.Println(size.FormatSize(run.TotalBytesFreed))
	} else {
		success, failed, skipped := eng.Summary()
		fmt.Printf("\n%d ok, %d failed, %d skipped, total %s freed\n",
			success, failed, skipped, size.FormatSize(run.TotalBytesFreed))
	}

	if len(run.Errors) > 0 {
		return fmt.Errorf("some cleaners failed:\n  %s", strings.Join(run.Errors, "\n  "))
	}
	return nil
}
