package inference

import (
	"math"
	"strings"
	"unicode/utf8"

	"gateway-api/internal/shared"
	"gateway-api/internal/tasks"
)

// taskRule is the shape contract and backend payload builder for one
// canonical task. build is only called on input that passed validate.
type taskRule struct {
	invalid  *shared.GatewayError
	validate func(input map[string]any) bool
	build    func(input map[string]any) map[string]any
}

var chatRule = taskRule{
	invalid:  shared.ErrInvalidChatInput,
	validate: validChatInput,
	build:    buildChatPayload,
}

var rules = map[tasks.Task]taskRule{
	tasks.Chat:      chatRule,
	tasks.Reasoning: chatRule,
	tasks.Embedding: {
		invalid:  shared.ErrInvalidEmbeddingInput,
		validate: validEmbeddingInput,
		build:    buildEmbeddingPayload,
	},
}

func validChatInput(input map[string]any) bool {
	messages, ok := input["messages"].([]any)
	if !ok || len(messages) < 1 || len(messages) > shared.MaxChatMessages {
		return false
	}
	for _, m := range messages {
		msg, ok := m.(map[string]any)
		if !ok {
			return false
		}
		if !nonBlankString(msg["role"]) || !nonBlankString(msg["content"]) {
			return false
		}
	}
	return true
}

func nonBlankString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// buildChatPayload passes messages through untouched and clamps the
// generation parameters into range.
func buildChatPayload(input map[string]any) map[string]any {
	return map[string]any{
		"messages":    input["messages"],
		"temperature": ClampTemperature(input["temperature"]),
		"max_tokens":  ClampMaxTokens(maxTokensField(input)),
	}
}

// maxTokensField prefers max_tokens and accepts maxTokens.
func maxTokensField(input map[string]any) any {
	if v, ok := input["max_tokens"]; ok && v != nil {
		return v
	}
	return input["maxTokens"]
}

// ClampTemperature returns v clamped into [0, 2], or the default when v is
// not a number.
func ClampTemperature(v any) float64 {
	t := shared.NumberOr(v, shared.DefaultTemperature)
	return math.Min(math.Max(t, shared.MinTemperature), shared.MaxTemperature)
}

// ClampMaxTokens truncates v toward zero and clamps it into [1, 2048], or
// returns the default when v is not a number.
func ClampMaxTokens(v any) int {
	n := math.Trunc(shared.NumberOr(v, shared.DefaultMaxTokens))
	n = math.Min(math.Max(n, shared.MinMaxTokens), shared.MaxMaxTokens)
	return int(n)
}

func validEmbeddingInput(input map[string]any) bool {
	text, ok := input["text"].(string)
	if !ok {
		return false
	}
	n := utf8.RuneCountInString(strings.TrimSpace(text))
	return n >= 1 && n <= shared.MaxEmbeddingChars
}

func buildEmbeddingPayload(input map[string]any) map[string]any {
	text, _ := input["text"].(string)
	return map[string]any{
		"text": strings.TrimSpace(text),
	}
}
