package hookup

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/hookup/internal/version"
	"github.com/arthur-debert/hookup/pkg/bootstrap"
	"github.com/arthur-debert/hookup/pkg/cobrax/topics"
	"github.com/arthur-debert/hookup/pkg/config"
	"github.com/arthur-debert/hookup/pkg/errors"
	"github.com/arthur-debert/hookup/pkg/guidance"
	"github.com/arthur-debert/hookup/pkg/hooks"
	"github.com/arthur-debert/hookup/pkg/paths"
	"github.com/arthur-debert/hookup/pkg/status"
)

// initEnv resolves the repository layout and merged configuration
func initEnv() (*paths.Paths, *config.Config, error) {
	p, err := paths.New("")
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrInitPaths, err)
	}
	cfg, err := config.Load(p.RepoRoot())
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return p, cfg, nil
}

func newUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "up",
		Short:   MsgUpShort,
		Long:    MsgUpLong,
		Example: MsgUpExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := initEnv()
			if err != nil {
				return err
			}

			// Persistent flags live on the root
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			force, _ := cmd.Root().PersistentFlags().GetBool("force")
			noInstall, _ := cmd.Flags().GetBool("no-install")
			manager, _ := cmd.Flags().GetString("manager")

			log.Info().
				Str("tool", cfg.Tool.Name).
				Bool("dry_run", dryRun).
				Bool("force", force).
				Msg("Bootstrapping repository")

			b := bootstrap.New(bootstrap.Options{
				Config:    cfg,
				Paths:     p,
				Out:       cmd.OutOrStdout(),
				DryRun:    dryRun,
				Force:     force,
				NoInstall: noInstall,
				Manager:   manager,
			})

			results, err := b.Up()
			if dryRun {
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), MsgPlannedStepItem, r.Step+":", r.Message)
				}
				fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
			}
			return err
		},
	}

	cmd.Flags().Bool("no-install", false, MsgFlagNoInstall)
	cmd.Flags().String("manager", "", MsgFlagManager)
	cmd.MarkFlagsMutuallyExclusive("no-install", "manager")

	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := initEnv()
			if err != nil {
				return err
			}

			report := status.Collect(context.Background(), cfg, p)
			status.Render(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := initEnv()
			if err != nil {
				return err
			}
			if !p.InRepo() {
				return errors.New(errors.ErrNotARepo, MsgErrNotARepo)
			}

			force, _ := cmd.Root().PersistentFlags().GetBool("force")
			path, err := hooks.WriteStarterConfig(p.RepoRoot(), force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigCreated, path)
			fmt.Fprint(cmd.OutOrStdout(), MsgConfigNextSteps)
			return nil
		},
	}
}

func newSnippetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "snippet",
		Short:   MsgSnippetShort,
		Long:    MsgSnippetLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := initEnv()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), guidance.Snippet(cfg.Tool.Name))
			return nil
		},
	}
}

func newGenconfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenconfigShort,
		Long:    MsgGenconfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.GenerateTOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newTopicsCmd(tm *topics.Manager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tm == nil || len(tm.List()) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoTopics)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), MsgAvailableTopics)
			for _, name := range tm.List() {
				fmt.Fprintf(cmd.OutOrStdout(), MsgTopicItem, name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgTopicsUsageHint)
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion script",
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hookup version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
