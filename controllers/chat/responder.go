package chatControllers

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// Message is one turn of a conversation in the wire format the completion
// API expects.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionClient is an external text-completion service invoked by model
// identifier.
type CompletionClient interface {
	Complete(ctx context.Context, model string, messages []Message, maxTokens int, temperature float64) (string, error)
}

const systemPrompt = `You are a helpful assistant for a Medicine Availability Finder app. ` +
	`Respond concisely and helpfully. If the user asks about medicine availability, price, or stock, ` +
	`suggest they use the search bar but offer insights based on common knowledge. ` +
	`For general health queries, advise consulting a doctor. Keep responses under 150 words.`

const apology = "Sorry, I encountered an issue with all available AI models. Please try again later."

const (
	completionMaxTokens   = 200
	completionTemperature = 0.7
)

// DefaultModels is the model priority order tried by the responder when none
// is configured.
func DefaultModels() []string {
	return []string{
		"meta-llama/llama-3.1-8b-instruct",
		"google/gemma-7b-it",
		"nousresearch/hermes-2-pro-mistral",
	}
}

// Responder resolves a chat reply by trying each model in priority order,
// exactly once per request, and falling back to a fixed apology when every
// model fails.
type Responder struct {
	client CompletionClient
	models []string
	log    *logrus.Logger
}

func NewResponder(client CompletionClient, models []string, log *logrus.Logger) *Responder {
	if len(models) == 0 {
		models = DefaultModels()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Responder{client: client, models: models, log: log}
}

// Respond returns the first non-empty completion. Provider failures are never
// surfaced to the caller: each one is logged as a warning and the next model
// in the list gets its single attempt.
func (r *Responder) Respond(ctx context.Context, userMessage string, history []Message) string {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: userMessage})

	for _, model := range r.models {
		reply, err := r.client.Complete(ctx, model, messages, completionMaxTokens, completionTemperature)
		if err != nil {
			r.log.WithField("model", model).WithError(err).Warn("model failed")
			continue
		}
		if reply = strings.TrimSpace(reply); reply != "" {
			return reply
		}
		r.log.WithField("model", model).Warn("model returned empty completion")
	}
	return apology
}
