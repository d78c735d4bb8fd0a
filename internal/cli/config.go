package cli

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/studentlife/campus/internal/app"
	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage campus configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigInitCommand(c))
	cmd.AddCommand(newConfigShowCommand(c))

	return cmd
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Email string
		Local bool
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file",
		Long: `Create a configuration file with commented defaults.

By default the global config is created under the user config
directory. Use --local to create a campus.toml in the current
directory instead; local settings override global ones.

Examples:
  campus config init --email alice@example.com
  campus config init --local`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				Email: opts.Email,
				Local: opts.Local,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "Owner email to write into the config")
	cmd.Flags().BoolVar(&opts.Local, "local", false, "Create a local campus.toml instead of the global config")
	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were found and the final merged settings.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			for _, info := range []domain.ConfigInfo{
				c.ConfigManager.GetGlobalConfigInfo(),
				c.ConfigManager.GetLocalConfigInfo(),
			} {
				if info.Exists {
					_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
				} else {
					_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
				}
			}

			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(cmd, cfg)
		},
	}

	return cmd
}

// formatEffectiveConfig renders the merged config as TOML.
func formatEffectiveConfig(cmd *cobra.Command, cfg *domain.Config) error {
	output := map[string]any{
		"api": map[string]any{
			"base_url":        cfg.API.BaseURL,
			"timeout_seconds": int(cfg.API.Timeout().Seconds()),
		},
		"owner": map[string]any{
			"email": cfg.Owner.Email,
		},
		"log": map[string]any{
			"level": cfg.Log.Level,
		},
		"tasks": map[string]any{
			"notes_limit": cfg.Tasks.NotesLimit,
		},
	}

	data, err := toml.Marshal(output)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
