// Package agent turns a composed data context and a user question into an
// answer from the completion backend.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/funddesk/fundchat"
	"github.com/funddesk/fundchat/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the model used when the caller does not pick one.
const DefaultModel = "gemini-2.5-flash"

// systemInstruction is the fixed persona and guidelines sent with every
// request.
const systemInstruction = `You are a helpful and knowledgeable assistant that answers questions about fund holdings and trades data.

Your capabilities include:
- Answering questions about fund performance, holdings, trades, and portfolio composition
- Providing insights about specific funds or comparing multiple funds
- Analyzing security types, custodians, and market values
- Identifying top performers, largest positions, and trends

Guidelines:
- Use the provided context to answer questions accurately and comprehensively
- Be conversational and helpful, not just listing data
- When asked about performance, focus on PL_YTD (Year-to-Date Profit and Loss) values
- Always provide specific numbers when available
- If asked about a specific fund, provide detailed information about that fund
- If asked general questions, provide an overview across all funds
- Use natural language and explain what the numbers mean
- If the question is unclear, respond with 'Sorry can not find the answer'`

// Assistant answers questions about the store's tables. The zero credential
// case is a valid configuration: the assistant still classifies and composes
// context, and only Answer reports the backend as unavailable.
type Assistant struct {
	store  *fundchat.Store
	client *genai.Client
	model  string
}

// New creates an Assistant over the given store. With an empty apiKey no
// client is created and Answer returns a *fundchat.ConfigError.
func New(ctx context.Context, store *fundchat.Store, apiKey string) (*Assistant, error) {
	a := &Assistant{store: store, model: DefaultModel}
	if apiKey == "" {
		return a, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing completion client: %w", err)
	}
	a.client = client
	return a, nil
}

// Configured reports whether a completion backend is available.
func (a *Assistant) Configured() bool { return a.client != nil }

// Context returns the text block that would be sent along with the question.
func (a *Assistant) Context(question string) string {
	return renderer.Context(a.store, a.store.Classify(question))
}

// Answer classifies the question, composes the context, and performs exactly
// one completion round trip. It returns the model's text unmodified, a
// *fundchat.QueryError on blank question text, a *fundchat.ConfigError when
// no backend is configured, or a *fundchat.UpstreamError wrapping the failed
// call. There is no retry and no streaming.
func (a *Assistant) Answer(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", &fundchat.QueryError{Reason: "empty question"}
	}
	if a.client == nil {
		return "", &fundchat.ConfigError{Reason: "no API key configured for the completion backend"}
	}

	content := fmt.Sprintf("Context:\n%s\n\nQuestion: %s\n\nPlease provide a helpful and detailed answer:",
		a.Context(question), question)

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(content), config)
	if err != nil {
		return "", &fundchat.UpstreamError{Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &fundchat.UpstreamError{Err: fmt.Errorf("no response from model %s", a.model)}
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
