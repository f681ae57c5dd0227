package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/mkozlowski/cleansweep/internal/catalog"
	"github.com/mkozlowski/cleansweep/internal/config"
)

// ListCmd prints the cleaner catalog as a table.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available cleaners",
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	return runListWithLoader(config.NewLoader())
}

func runListWithLoader(loader *config.Loader) error {
	cfg, _, err := loader.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cat := catalog.Build(cfg)
	if len(cat) == 0 {
		fmt.Println("No cleaners enabled")
		return nil
	}

	width := 80
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		width = w
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("93"))
	privStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	rows := make([][]string, 0)
	for _, category := range cat {
		for _, item := range category.Items {
			priv := ""
			if item.RequiresPrivilege {
				priv = privStyle.Render("root")
			}
			rows = append(rows, []string{category.Name, item.Name, item.Description, priv})
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Width(width).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("Category", "Cleaner", "Description", "Privileges").
		Rows(rows...)

	fmt.Println(t)
	return nil
}
