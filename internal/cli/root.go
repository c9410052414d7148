// Package cli implements the toolmesh command line: a one-shot --message mode
// and an interactive prompt loop around a single tool agent.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/toolmesh"
	"github.com/hupe1980/toolmesh/agent"
	"github.com/hupe1980/toolmesh/config"
	"github.com/hupe1980/toolmesh/logging"
	"github.com/hupe1980/toolmesh/workspace"
)

// ErrEmptyMessage is returned when --message is given without text.
var ErrEmptyMessage = errors.New("Received empty message")

// Prompt is printed before entering interactive mode.
const Prompt = "How can I help you?"

type rootFlags struct {
	message    string
	verbose    bool
	configPath string
}

// Deps carries injectable collaborators; zero values select the real ones.
type Deps struct {
	// NewAgent builds the agent from the loaded configuration.
	NewAgent func(cfg config.Config, logger logging.Logger) (*agent.DispatchAgent, error)
}

// NewRootCmd returns the toolmesh root command.
func NewRootCmd(deps Deps) *cobra.Command {
	if deps.NewAgent == nil {
		deps.NewAgent = defaultAgent
	}
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "toolmesh",
		Short: "Chat with a tool-dispatching agent",
		Example: `  # Send a single message
  toolmesh --message "use greeting tool"

  # Start an interactive session with reflections
  toolmesh -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			level, _ := logging.ParseLevel(cfg.LogLevel)
			logger := logging.NewSlogLogger(level, cfg.LogFormat, cmd.ErrOrStderr())

			if cmd.Flags().Changed("message") && strings.TrimSpace(flags.message) == "" {
				return ErrEmptyMessage
			}

			a, err := deps.NewAgent(cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.message != "" {
				line, err := ProcessMessage(cmd.Context(), a, flags.message, flags.verbose)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, line)
				return nil
			}
			return interactive(cmd.Context(), a, cmd.InOrStdin(), out, flags.verbose)
		},
	}

	cmd.Flags().StringVarP(&flags.message, "message", "m", "", "Direct message to send")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show detailed processing information")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to a YAML config file")

	return cmd
}

func defaultAgent(cfg config.Config, logger logging.Logger) (*agent.DispatchAgent, error) {
	ws, err := workspace.NewOS(cfg.WorkspaceRoot)
	if err != nil {
		return nil, fmt.Errorf("open workspace: %w", err)
	}
	return toolmesh.NewToolAgent(func(o *toolmesh.Options) {
		o.Config = cfg
		o.Workspace = ws
		o.Logger = logger
	}), nil
}

// ProcessMessage runs one message through a and formats the reply. Verbose
// output adds the newest memory entry as a reflection line.
func ProcessMessage(ctx context.Context, a *agent.DispatchAgent, message string, verbose bool) (string, error) {
	reply, err := toolmesh.Chat(ctx, a, "User", message)
	if err != nil {
		return "", err
	}
	out := "Agent: " + reply
	if verbose {
		if last, ok := a.Memory().Last(); ok {
			out += "\n[System reflection] " + last.Content
		}
	}
	return out, nil
}

func interactive(ctx context.Context, a *agent.DispatchAgent, in io.Reader, out io.Writer, verbose bool) error {
	fmt.Fprintln(out, Prompt)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		reply, err := ProcessMessage(ctx, a, line, verbose)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(out, "\nGoodbye!")
				return nil
			}
			return err
		}
		fmt.Fprintln(out, reply)
	}
}
