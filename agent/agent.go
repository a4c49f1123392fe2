// Package agent implements the interactive analysis assistant, a chat
// session with a Gemini model seeded with the user's ETF reports.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the REPL session between the user and the analyst.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	analyst *Analyst
}

// New returns an Agent writing its output to w and reading user input
// from r (typically stdout and stdin).
func New(w io.Writer, r io.Reader, analyst *Analyst) *Agent {
	return &Agent{w: w, r: bufio.NewReader(r), analyst: analyst}
}

const prompt = "assist> "

// Run starts the interactive session. Extra prompts are played before
// reading from the user, which also makes the loop testable.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.analyst.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Ask about your ETFs. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)

		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			if strings.TrimSpace(input) == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.analyst.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
