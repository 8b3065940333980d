package rules

import (
	"context"
	"strings"
)

// Narrator is a template narrator: it echoes the fact sheet it is given as
// the explanation. Deterministic, instant, and safe to use offline.
type Narrator struct{}

// NewNarrator creates the template narrator.
func NewNarrator() *Narrator {
	return &Narrator{}
}

// Narrate implements ports.Narrator.
func (n *Narrator) Narrate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(prompt), nil
}

// Responder answers out-of-domain questions with a fixed capability notice.
type Responder struct{}

// NewResponder creates the canned general-knowledge responder.
func NewResponder() *Responder {
	return &Responder{}
}

// Respond implements ports.GeneralResponder.
func (r *Responder) Respond(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "I can help with questions about your pension savings, risk profile, " +
		"suspicious activity, and retirement projections. Your question doesn't " +
		"match any of those areas, so here is general guidance: review your plan " +
		"statement regularly and contact your provider for account-specific help.", nil
}
