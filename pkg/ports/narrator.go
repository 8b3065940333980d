package ports

import "context"

// Narrator turns a prompt into a short natural-language explanation.
// Callers bound it with a context deadline; a narrator that cannot answer
// in time must return ctx.Err().
type Narrator interface {
	Narrate(ctx context.Context, prompt string) (string, error)
}

// GeneralResponder answers questions that match no specialist intent.
type GeneralResponder interface {
	Respond(ctx context.Context, question string) (string, error)
}
