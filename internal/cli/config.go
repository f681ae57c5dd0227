package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mkozlowski/cleansweep/internal/catalog"
	"github.com/mkozlowski/cleansweep/internal/config"
)

// ConfigCmd manages the cleaner configuration.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage the cleansweep configuration file.

The config controls which builtin cleaners are offered ('disabled'),
user-defined command cleaners ('custom'), the confirmation prompt
('confirm') and the UI tick rate ('tick').`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the configuration and the resulting catalog",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	RunE:  runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration in $EDITOR",
	RunE:  runConfigEdit,
}

func init() {
	ConfigCmd.AddCommand(configShowCmd, configInitCmd, configEditCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	return runConfigShowWithLoader(config.NewLoader())
}

func runConfigShowWithLoader(loader *config.Loader) error {
	cfg, _, err := loader.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	configPath, _ := loader.ConfigPath()
	fmt.Printf("# %s\n", configPath)
	fmt.Print(string(out))

	// Summarize what the catalog looks like once the config is applied.
	cat := catalog.Build(cfg)
	fmt.Printf("\n# %d cleaners enabled in %d categories", len(cat.ItemNames()), len(cat))
	if n := len(cfg.Disabled); n > 0 {
		fmt.Printf(", %d disabled", n)
	}
	if n := len(cfg.Custom); n > 0 {
		fmt.Printf(", %d custom", n)
	}
	fmt.Println()
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	return runConfigInitWithLoader(config.NewLoader())
}

func runConfigInitWithLoader(loader *config.Loader) error {
	_, created, err := loader.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	configPath, _ := loader.ConfigPath()
	if !created {
		fmt.Printf("Config already exists: %s\n", configPath)
		return nil
	}

	fmt.Printf("Created %s\n", configPath)
	fmt.Println("List builtin cleaner names under 'disabled' to hide them;")
	fmt.Println("add your own commands under 'custom'.")
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	return runConfigEditWithLoader(config.NewLoader(), os.Getenv("EDITOR"))
}

func runConfigEditWithLoader(loader *config.Loader, editor string) error {
	if editor == "" {
		editor = "vi"
	}

	if _, _, err := loader.LoadOrCreate(); err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	configPath, err := loader.ConfigPath()
	if err != nil {
		return fmt.Errorf("get config path: %w", err)
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
