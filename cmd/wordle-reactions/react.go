package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// reactArgs is the JSON payload passed to the react listener.
type reactArgs struct {
	Message *string `json:"message"`
}

func newReactCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "react [--] <args>",
		Short: "Emit add_reaction events for game results in a message",
		Long: `Evaluate a message against the game result catalogue.

<args> is a JSON object with at least a "message" string. The output is a JSON
array of add_reaction events, or [] when nothing matched or the channel is not
enabled in the configuration.

Examples:
  wordle-reactions -c 123 -m 456 react '{"message": "Wordle 942 1/6"}'
  # [{"type":"add_reaction","channel_id":"123","message_id":"456","emoji":"🧠"}, ...]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReact(cmd, opts, args[0])
		},
	}
}

func runReact(cmd *cobra.Command, opts *globalOptions, raw string) error {
	// Reject malformed payloads before touching configuration.
	message, err := parseReactArgs(raw)
	if err != nil {
		return fmt.Errorf("invalid react args: %w", err)
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	logger := opts.newLogger(cfg, cmd.ErrOrStderr())

	m, err := buildMatcher(cfg, opts.patternFiles, logger)
	if err != nil {
		return err
	}

	logger.Debug("evaluating message",
		"guild_id", opts.guildID,
		"channel_id", opts.channelID,
		"user_id", opts.userID,
		"message_id", opts.messageID,
	)
	events := m.Evaluate(message, opts.channelID, opts.messageID)

	return writeJSON(cmd.OutOrStdout(), events)
}

func parseReactArgs(raw string) (string, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	var args reactArgs
	if err := dec.Decode(&args); err != nil {
		return "", err
	}
	if dec.More() {
		return "", errors.New("unexpected data after JSON object")
	}
	if args.Message == nil {
		return "", errors.New(`missing "message" field`)
	}
	return *args.Message, nil
}
