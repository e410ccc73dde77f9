package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"financial-agent/internal/advisor"
	"financial-agent/internal/agent"
)

const (
	defaultCLISession = "cli"
	promptText        = "> "
)

var errQueryRequired = errors.New("a query is required unless --interactive is set")

type askOptions struct {
	SessionID   string
	Focus       string
	Interactive bool
}

func newAskCmd(wire func(ctx context.Context) (*app, error)) *cobra.Command {
	var opts askOptions

	cmd := &cobra.Command{
		Use:   "ask [query]",
		Short: "Ask a financial research question",
		Example: `  finagent ask "What's the latest news on Tesla?"
  finagent ask --focus NVDA "how did it do last quarter"
  finagent ask --interactive --session research`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" && !opts.Interactive {
				return errQueryRequired
			}

			a, err := wire(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if !opts.Interactive {
				return ask(cmd.Context(), cmd.OutOrStdout(), a.advisor, opts, query)
			}
			return repl(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.advisor, opts, query)
		},
	}

	cmd.Flags().StringVarP(&opts.SessionID, "session", "s", defaultCLISession, "conversation session id")
	cmd.Flags().StringVarP(&opts.Focus, "focus", "f", "", "ticker every lookup is pinned to")
	cmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "keep asking follow-up questions until exit")
	return cmd
}

func ask(ctx context.Context, w io.Writer, uc advisorClient, opts askOptions, query string) error {
	input := advisor.ChatInput{Query: query, SessionID: opts.SessionID}
	if opts.Focus != "" {
		input.UserContext = agent.UserContext{agent.ContextFocusedTicker: opts.Focus}
	}

	ans, err := uc.Chat(ctx, input)
	if err != nil {
		if errors.Is(err, advisor.ErrGenerationUnavailable) {
			return fmt.Errorf("%w: configure an llm provider in config.yaml", err)
		}
		return err
	}
	renderAnswer(w, ans)
	return nil
}

// repl reads one question per line. "clear" forgets the session and
// "exit" or "quit" ends the loop.
func repl(ctx context.Context, r io.Reader, w io.Writer, uc advisorClient, opts askOptions, first string) error {
	fmt.Fprintln(w, color.CyanString("Session %s. Type \"clear\" to reset or \"exit\" to quit.", opts.SessionID))

	if first != "" {
		if err := ask(ctx, w, uc, opts, first); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, color.HiBlackString(promptText))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "clear":
			if err := uc.ClearHistory(ctx, opts.SessionID); err != nil {
				return err
			}
			fmt.Fprintln(w, color.YellowString("History cleared."))
			continue
		}

		if err := ask(ctx, w, uc, opts, line); err != nil {
			if errors.Is(err, advisor.ErrGenerationUnavailable) || ctx.Err() != nil {
				return err
			}
			fmt.Fprintln(w, color.RedString("error: %v", err))
		}
	}
	return scanner.Err()
}
