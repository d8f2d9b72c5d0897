package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/casper7/wordle-reactions/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const appName = "wordle-reactions"

// globalOptions holds flags shared by every subcommand.
type globalOptions struct {
	guildID      string
	channelID    string
	userID       string
	messageID    string
	configPath   string
	patternFiles []string
	verbose      bool
}

func newRootCmd(version string) *cobra.Command {
	opts := &globalOptions{}
	var listeners, commands, jobs bool

	cmd := &cobra.Command{
		Use:   appName,
		Short: "React to daily puzzle game results",
		Long: `A casper7 plugin that reacts to daily puzzle game results.

The react subcommand reads a message payload and prints a JSON array of
add_reaction events, one for every game result pattern the message matches.
Reactions are only produced for channels listed in the configuration.

Examples:
  # Evaluate a message
  wordle-reactions -c 123 -m 456 react '{"message": "Wordle 942 1/6"}'

  # Print plugin registration metadata
  wordle-reactions --listeners
  wordle-reactions --commands
  wordle-reactions --jobs`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case listeners:
				return writeJSON(out, listenerDescriptors())
			case commands:
				return writeJSON(out, commandDescriptors())
			case jobs:
				return writeJSON(out, jobDescriptors())
			}
			return cmd.Help()
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(appName + " {{.Version}}\n")

	addGlobalFlags(cmd.PersistentFlags(), opts)

	cmd.Flags().BoolVar(&listeners, "listeners", false, "Get listener config JSON")
	cmd.Flags().BoolVar(&commands, "commands", false, "Get command config JSON")
	cmd.Flags().BoolVar(&jobs, "jobs", false, "Get job config JSON")
	cmd.MarkFlagsMutuallyExclusive("listeners", "commands", "jobs")

	cmd.AddCommand(
		newReactCmd(opts),
		newWatchCmd(opts),
		newCheckCmd(),
		newCompletionCmd(),
	)

	return cmd
}

func addGlobalFlags(fs *pflag.FlagSet, opts *globalOptions) {
	fs.StringVarP(&opts.guildID, "guild", "g", "", "Guild ID the message is coming from")
	fs.StringVarP(&opts.channelID, "channel", "c", "", "Channel ID the message is coming from")
	fs.StringVarP(&opts.userID, "user", "u", "", "User ID the message is coming from")
	fs.StringVarP(&opts.messageID, "message", "m", "", "ID of the message that was sent")
	fs.StringVar(&opts.configPath, "config", "",
		"Config file (default $"+config.EnvConfigPath+" or ~/.config/wordle-reactions/config.yaml)")
	fs.StringArrayVar(&opts.patternFiles, "patterns", nil,
		"Extra YAML pattern file (repeatable)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

// loadConfig reads the configuration named by --config or the default location.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	return config.Load(o.configPath)
}

// newLogger returns a text logger on w. --verbose forces debug level.
func (o *globalOptions) newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}
	if o.verbose {
		level = slog.LevelDebug
	}
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
