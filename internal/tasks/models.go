package tasks

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default model identifiers, one per canonical task.
const (
	DefaultChatModel      = "@cf/meta/llama-3.1-8b-instruct"
	DefaultReasoningModel = "@cf/deepseek-ai/deepseek-r1-distill-qwen-32b"
	DefaultEmbeddingModel = "@cf/baai/bge-base-en-v1.5"
)

// ModelTable maps canonical tasks to model identifiers. It is built once at
// startup and never mutated afterwards, so it is safe for concurrent reads.
type ModelTable struct {
	models map[Task]string
}

func DefaultModelTable() *ModelTable {
	return &ModelTable{models: map[Task]string{
		Chat:      DefaultChatModel,
		Reasoning: DefaultReasoningModel,
		Embedding: DefaultEmbeddingModel,
	}}
}

// Model returns the identifier for t. t must be canonical.
func (m *ModelTable) Model(t Task) string {
	return m.models[t]
}

type modelFile struct {
	Models map[string]string `yaml:"models"`
}

// LoadModelTable reads per-task overrides from a YAML file of the form
//
//	models:
//	  chat: "@cf/meta/llama-3.1-8b-instruct"
//	  embedding: "@cf/baai/bge-large-en-v1.5"
//
// Tasks missing from the file keep their default model. An empty path returns
// the defaults.
func LoadModelTable(path string) (*ModelTable, error) {
	table := DefaultModelTable()
	if path == "" {
		return table, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed reading model file: %w", err)
	}
	return parseModelTable(table, raw)
}

func parseModelTable(table *ModelTable, raw []byte) (*ModelTable, error) {
	var file modelFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed parsing model file: %w", err)
	}

	var errs error
	for name, model := range file.Models {
		t := Task(strings.ToLower(strings.TrimSpace(name)))
		if !IsCanonical(t) {
			errs = errors.Join(errs, fmt.Errorf("unknown task %q", name))
			continue
		}
		model = strings.TrimSpace(model)
		if model == "" {
			errs = errors.Join(errs, fmt.Errorf("empty model for task %q", name))
			continue
		}
		table.models[t] = model
	}
	if errs != nil {
		return nil, errs
	}
	return table, nil
}
