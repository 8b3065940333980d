// Package gemini implements the narrator and general responder against the
// Google GenAI API. It is an optional adapter; the pipeline degrades to the
// rules package when it is absent or failing.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Narrator turns fact sheets into user-facing prose via Gemini.
type Narrator struct {
	client *genai.Client
	model  string
}

// Option configures a Narrator.
type Option func(*Narrator)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(n *Narrator) { n.model = model }
}

// New creates a Gemini-backed narrator.
func New(ctx context.Context, apiKey string, opts ...Option) (*Narrator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	n := &Narrator{
		client: client,
		model:  defaultModel,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

const narrationPreamble = "You are a pension assistant. Rewrite the following " +
	"facts as a short, plain-language explanation for the account holder. Do " +
	"not change any numbers and do not add financial advice.\n\n"

// Narrate implements ports.Narrator. The caller bounds the call with a
// context deadline; the SDK surfaces cancellation as an error.
func (n *Narrator) Narrate(ctx context.Context, prompt string) (string, error) {
	return n.generate(ctx, narrationPreamble+prompt)
}

const respondPreamble = "You are a pension assistant. Answer the question " +
	"below with general knowledge only. Decline anything that asks for " +
	"specific investment, political, or religious advice.\n\n"

// Respond implements ports.GeneralResponder.
func (n *Narrator) Respond(ctx context.Context, question string) (string, error) {
	return n.generate(ctx, respondPreamble+question)
}

func (n *Narrator) generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := n.client.Models.GenerateContent(ctx, n.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}
