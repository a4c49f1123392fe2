package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const analystInstruction = `You are an investment analyst assisting the user
with a set of exchange-traded funds they track.

The report below was computed locally from the daily closing prices of
those ETFs. Treat its figures as ground truth: total and annualized
returns, annualized volatility, Sharpe and Sortino ratios, maximum
drawdown, base-100 performance and the correlation of daily returns.

Answer the user's questions about these ETFs. When a question goes
beyond the report (recent news, fund composition), use Google Search
and say so. Keep answers short and concrete, and never present a figure
you cannot source from the report or a search result.`

// Analyst is the chat expert seeded with the user's comparison report.
type Analyst struct {
	report string
	chat   *genai.Chat
}

// NewAnalyst returns an analyst grounded on the given markdown report.
func NewAnalyst(report string) *Analyst {
	return &Analyst{report: report}
}

// Start creates the chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{
			{Text: analystInstruction},
			{Text: "\n\n## Report\n\n" + a.report},
		}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return fmt.Errorf("cannot start analyst chat: %w", err)
	}
	a.chat = chat
	return nil
}

// Ask sends one user question and returns the analyst's answer.
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
