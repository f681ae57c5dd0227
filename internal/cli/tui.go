package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mkozlowski/cleansweep/internal/catalog"
	"github.com/mkozlowski/cleansweep/internal/config"
	"github.com/mkozlowski/cleansweep/internal/tui"
)

// TuiCmd launches the interactive cleaner. Also the root command's default
// action when invoked with no subcommand.
var TuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"i", "interactive"},
	Short:   "Interactive cleaning mode",
	RunE:    runTui,
}

func runTui(_ *cobra.Command, _ []string) error {
	return RunTuiWithLoader(config.NewLoader())
}

// RunTuiWithLoader launches the TUI with the given config loader.
func RunTuiWithLoader(loader *config.Loader) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("interactive mode requires a terminal; use 'cleansweep clean' instead")
	}

	cfg, _, err := loader.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cat := catalog.Build(cfg)
	if len(cat) == 0 {
		fmt.Println("No cleaners enabled")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(tui.New(cat, cfg), tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
