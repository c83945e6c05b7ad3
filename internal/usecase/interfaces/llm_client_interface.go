package interfaces

import "context"

// ILLMClient abstracts the hosted model used to read CIM text.
//
// Complete returns the raw model text. Implementations do not parse it.
type ILLMClient interface {
	Complete(ctx context.Context, systemPrompt, prompt string) (string, error)
	Provider() string
}
