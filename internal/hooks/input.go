package hooks

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// EventKind identifies the lifecycle point a handler was invoked for.
type EventKind string

const (
	// EventFileWritePre fires before a file write (PreToolUse).
	EventFileWritePre EventKind = "file-write-pre"
	// EventFileWritePost fires after a file write (PostToolUse).
	EventFileWritePost EventKind = "file-write-post"
	// EventPromptSubmit fires before a user prompt is processed (UserPromptSubmit).
	EventPromptSubmit EventKind = "prompt-submit"
)

// argumentPaths lists, per event kind, the nested objects that may carry
// the tool arguments. The first path that resolves to an object wins.
var argumentPaths = map[EventKind][][]string{
	EventFileWritePre:  {{"toolInput", "arguments"}, {"tool_input"}},
	EventFileWritePost: {{"toolResult", "arguments"}, {"tool_input"}},
}

// contentKeys are tried in order; edit tools send new_string instead of content.
var contentKeys = []string{"content", "new_string"}

// Event is the single input to a handler invocation.
type Event struct {
	Kind       EventKind
	TargetPath string
	Content    string
	Prompt     string
	// Cwd is the working directory reported by the runtime, if any.
	Cwd string

	// hasPrompt records a prompt key that was present, even if empty.
	hasPrompt bool
	arguments map[string]interface{}
}

// IsEmpty reports whether the event carries nothing to inspect. A prompt
// event counts as non-empty when the prompt key is present at all.
func (e *Event) IsEmpty() bool {
	return e.TargetPath == "" && e.Content == "" && e.Prompt == "" && !e.hasPrompt
}

// ReadEvent reads one JSON document from reader. It never fails: empty,
// unreadable or malformed input yields an empty event of the given kind.
func ReadEvent(reader io.Reader, kind EventKind, logger *zap.Logger) *Event {
	event, err := ParseEvent(reader, kind)
	if err != nil {
		logger.Debug("ignoring unreadable hook input", zap.String("kind", string(kind)), zap.Error(err))
		return &Event{Kind: kind}
	}
	return event
}

// ParseEvent reads and parses one JSON document from reader.
func ParseEvent(reader io.Reader, kind EventKind) (*Event, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	event := &Event{Kind: kind}
	if strings.TrimSpace(string(data)) == "" {
		return event, nil
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	event.Cwd = stringValue(envelope, "cwd")

	if kind == EventPromptSubmit {
		event.Prompt, event.hasPrompt = envelope["prompt"].(string)
		return event, nil
	}

	for _, path := range argumentPaths[kind] {
		if args, ok := lookupObject(envelope, path); ok {
			event.arguments = args
			break
		}
	}

	event.TargetPath, _ = event.GetStringArg("file_path")
	for _, key := range contentKeys {
		if content, ok := event.GetStringArg(key); ok && content != "" {
			event.Content = content
			break
		}
	}

	return event, nil
}

// GetStringArg retrieves a string argument from the tool arguments.
// Returns the value and true if found, empty string and false if not found.
func (e *Event) GetStringArg(name string) (string, bool) {
	if e.arguments == nil {
		return "", false
	}
	value, ok := e.arguments[name].(string)
	return value, ok
}

// lookupObject walks path through nested JSON objects.
func lookupObject(root map[string]interface{}, path []string) (map[string]interface{}, bool) {
	current := root
	for _, key := range path {
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func stringValue(object map[string]interface{}, key string) string {
	value, _ := object[key].(string)
	return value
}
