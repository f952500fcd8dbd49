package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/primo/cartera/renderer"
	"google.golang.org/genai"
)

const assistModel = "gemini-2.5-pro"

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask an AI assistant about the portfolio" }
func (*assistCmd) Usage() string {
	return `pfc assist [question...]

  Starts an interactive session with an AI assistant that knows the
  current portfolio valuation. Type 'bye' to exit.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	dashboard := renderer.RenderDashboard(&renderer.Dashboard{
		Valuation: session.Ledger.Valuation(),
		Positions: session.Ledger.Positions(),
		History:   session.History.Points(),
	})
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: "You are a financial assistant. " +
			"Answer questions about the user's portfolio session below. " +
			"Be concise and answer in the session currency.\n\n" + dashboard}}},
	}
	chat, err := client.Chats.Create(ctx, assistModel, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating chat:", err)
		return subcommands.ExitFailure
	}

	prompts := f.Args()
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Welcome to pfc assist. Type 'bye' to exit.")
	for {
		fmt.Print("assist> ")
		var input string
		if len(prompts) > 0 {
			input = strings.Join(prompts, " ")
			prompts = nil
			fmt.Println(input)
		} else {
			input, err = reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return subcommands.ExitSuccess
				}
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return subcommands.ExitSuccess
		}

		resp, err := chat.Send(ctx, &genai.Part{Text: input})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Assistant failed:", err)
			return subcommands.ExitFailure
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			fmt.Fprintln(os.Stderr, "Assistant gave no answer.")
			continue
		}
		printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	}
}
