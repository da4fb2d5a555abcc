package hookup

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Bootstrap commit hooks for your repository"
	MsgUpShort        = "Install the hook tool and register repository hooks"
	MsgStatusShort    = "Show the hook environment status"
	MsgInitShort      = "Create a starter hook configuration file"
	MsgSnippetShort   = "Print the post-bootstrap usage guidance"
	MsgGenconfigShort = "Print the default hookup configuration"
	MsgTopicsShort    = "Display available documentation topics"
	MsgTopicsLong     = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort   = "Print version information"

	// Status messages
	MsgDryRunNotice     = "\nDRY RUN MODE - No changes were made"
	MsgPlannedStepItem  = "  %-10s %s\n"
	MsgConfigCreated    = "Created %s\n"
	MsgConfigNextSteps  = "Run 'hookup up' to register the hooks.\n"
	MsgNoTopics         = "No help topics available."
	MsgAvailableTopics  = "Available help topics:"
	MsgTopicItem        = "  %s\n"
	MsgTopicsUsageHint  = "\nUse 'hookup help <topic>' to read about a specific topic."

	// Error messages
	MsgErrInitPaths  = "failed to initialize paths: %w"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrNotARepo   = "hookup init must run inside a git repository"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview external commands without executing them"
	MsgFlagForce     = "Run the installation step even when the tool is already present"
	MsgFlagNoInstall = "Skip the package-manager installation step"
	MsgFlagManager   = "Package manager to install with (brew, apt, dnf, pacman, uv, pip)"
)

// Long messages
const (
	MsgRootLong = `hookup prepares a repository for commit-time checks: it makes sure the
hook-management tool is installed, registers the repository's git hooks
through it, and prints usage guidance.

The tool, its package name, and the package manager are configurable
via hookup.toml; pre-commit is bootstrapped by default.`

	MsgUpLong = `The 'up' command runs the full bootstrap sequence:

  1. Check whether the hook tool resolves on PATH
  2. Install it via a system package manager when absent
  3. Register the repository's git hooks through the tool
  4. Print usage guidance

Steps run strictly in order; the first failure aborts the rest and its
exit status becomes hookup's exit status. Nothing is retried.`

	MsgUpExample = `  # Bootstrap the current repository
  hookup up

  # Preview what would be executed
  hookup up --dry-run

  # Pick the package manager explicitly
  hookup up --manager brew

  # Never touch the package manager
  hookup up --no-install`

	MsgStatusLong = `Status reports the bootstrap-relevant environment without changing
anything: tool presence and version, the package manager auto-detection
would pick, the repository root, the hook configuration file, and which
git hooks the tool currently manages.`

	MsgInitLong = `Init writes a starter configuration file for the hook tool at the
repository root. The starter hooks are repository-agnostic hygiene
checks; edit the file to taste afterwards.`

	MsgSnippetLong = `Snippet prints the same usage guidance 'up' shows after a successful
bootstrap, unstyled, for pasting into docs or onboarding scripts.`

	MsgGenconfigLong = `Genconfig prints hookup's default configuration as TOML. Redirect it
to hookup.toml at the repository root (or the hookup XDG config dir)
and edit the values to customize the bootstrap.`
)

// MsgUsageTemplate is the root usage template. It follows cobra's
// default layout with the bold/boldUpper template functions applied to
// section headers.
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold $group.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
