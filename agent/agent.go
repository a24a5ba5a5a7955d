// Package agent implements an AI risk analyst that discusses a simulation
// report in an interactive chat session.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const systemInstruction = `You are a pragmatic portfolio risk analyst.
You are given the report of a Monte Carlo simulation of a portfolio's future
value: percentiles of terminal wealth and the probability of profit.
Answer the user's questions about that report. Be concise and quantitative.
Remind the user that the simulation assumes jointly normal daily returns
whenever a question pushes beyond what that model supports.`

// Analyst is the AI assistant that handles the chat session.
type Analyst struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// New creates a new Analyst writing its output to w (e.g. os.Stdout) and
// reading user input from r (e.g. os.Stdin).
func New(w io.Writer, r io.Reader) *Analyst {
	return &Analyst{w: w, r: bufio.NewReader(r)}
}

// Start creates the chat session seeded with the simulation report.
func (a *Analyst) Start(ctx context.Context, client *genai.Client, report string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}
	history := []*genai.Content{
		{Role: genai.RoleUser, Parts: []*genai.Part{{Text: "Here is the simulation report:\n\n" + report}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, history)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the analyst's answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "analyst> "

// Run starts the interactive REPL session for the analyst.
func (a *Analyst) Run(ctx context.Context, client *genai.Client, report string, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client, report); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to mcs risk analyst. Type 'bye' to exit.")

	// REPL loop
	for {
		// Print the prompt
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
