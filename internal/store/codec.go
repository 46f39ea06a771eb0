package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	model "task-tracker.com/task-tracker/pkg/models"
)

// Codec converts the whole task collection to and from its persisted text form.
type Codec interface {
	Encode(tasks []model.Task) (string, error)
	Decode(data string) ([]model.Task, error)
}

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func NewCodec(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		return JSONCodec{}, nil
	case FormatYAML, "yml":
		return YAMLCodec{}, nil
	}
	return nil, fmt.Errorf("unknown storage format %q", format)
}

type JSONCodec struct{}

func (JSONCodec) Encode(tasks []model.Task) (string, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (JSONCodec) Decode(data string) ([]model.Task, error) {
	tasks := []model.Task{}
	if strings.TrimSpace(data) == "" {
		return tasks, nil
	}
	if err := json.Unmarshal([]byte(data), &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

type YAMLCodec struct{}

func (YAMLCodec) Encode(tasks []model.Task) (string, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := yaml.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (YAMLCodec) Decode(data string) ([]model.Task, error) {
	var tasks []model.Task
	if err := yaml.Unmarshal([]byte(data), &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}
