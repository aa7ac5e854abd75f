// Package tasks resolves free-form task names to canonical tasks and maps
// canonical tasks to model identifiers.
package tasks

import "strings"

type Task string

const (
	Chat      Task = "chat"
	Reasoning Task = "reasoning"
	Embedding Task = "embedding"
)

// DefaultTask is used when a request omits the task field.
const DefaultTask = Chat

var canonical = map[Task]struct{}{
	Chat:      {},
	Reasoning: {},
	Embedding: {},
}

var aliases = map[string]Task{
	"chat":         Chat,
	"conversation": Chat,
	"reason":       Reasoning,
	"analysis":     Reasoning,
	"embed":        Embedding,
	"embeddings":   Embedding,
	"vectorize":    Embedding,
}

// All returns the canonical tasks in a stable order.
func All() []Task {
	return []Task{Chat, Reasoning, Embedding}
}

func IsCanonical(t Task) bool {
	_, ok := canonical[t]
	return ok
}

// Resolve maps the raw `task` field of a request body to a canonical task.
// A nil value means the field was absent or null. Non-string values and
// names outside the canonical set do not resolve.
func Resolve(raw any) (Task, bool) {
	if raw == nil {
		return DefaultTask, true
	}
	name, ok := raw.(string)
	if !ok {
		return "", false
	}
	return ResolveName(name)
}

// ResolveName trims and lowercases name, applies the alias table and falls
// back to the cleaned name itself.
func ResolveName(name string) (Task, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	t, ok := aliases[cleaned]
	if !ok {
		t = Task(cleaned)
	}
	if !IsCanonical(t) {
		return "", false
	}
	return t, true
}
