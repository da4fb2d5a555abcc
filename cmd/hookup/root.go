package hookup

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/hookup/internal/version"
	"github.com/arthur-debert/hookup/pkg/cobrax/topics"
	"github.com/arthur-debert/hookup/pkg/logging"
)

//go:embed topics
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "hookup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help but signal incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().Bool("dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().Bool("force", false, MsgFlagForce)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Disable automatic help command (replaced by the topics help below)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Topic-based help from the embedded docs
	tm := initTopics(rootCmd)

	// Add all commands
	rootCmd.AddCommand(newUpCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newSnippetCmd())
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newTopicsCmd(tm))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// initTopics loads the embedded help topics and attaches them to the
// root command. Returns nil when the embed is empty.
func initTopics(rootCmd *cobra.Command) *topics.Manager {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		return nil
	}

	tm, err := topics.New(sub, topics.Options{
		// Always use Glamour renderer for markdown files
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		return nil
	}

	tm.Attach(rootCmd)
	return tm
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
