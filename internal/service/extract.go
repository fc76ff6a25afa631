package service

import (
	"bytes"
	"encoding/json"
)

// Extractor pulls the narrative text out of a decoded workflow response.
// It reports false when its layout does not apply.
type Extractor func(body map[string]any) (string, bool)

// DefaultExtractors is the order in which known workflow response layouts are tried
var DefaultExtractors = []Extractor{
	nestedOutputsField("text"),
	nestedOutputsField("result"),
	nestedOutputsString,
	topLevelOutputsField("text"),
}

// ExtractAnalysis tries each extractor in order. When none applies it returns
// the indented JSON of data.outputs, or of the whole body if that is absent.
// Bodies that are not JSON objects are always serialized whole.
func ExtractAnalysis(body any, extractors []Extractor) string {
	obj, ok := body.(map[string]any)
	if !ok {
		return indentJSON(body)
	}
	for _, extract := range extractors {
		if text, ok := extract(obj); ok {
			return text
		}
	}

	if data, ok := obj["data"].(map[string]any); ok && truthy(data["outputs"]) {
		return indentJSON(data["outputs"])
	}
	return indentJSON(obj)
}

// indentJSON renders v with two-space indentation and without HTML escaping
func indentJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// WorkflowFailure reports whether the workflow run ended with status "failed",
// along with its error message
func WorkflowFailure(body any) (string, bool) {
	obj, ok := body.(map[string]any)
	if !ok {
		return "", false
	}
	data, ok := obj["data"].(map[string]any)
	if !ok {
		return "", false
	}
	if status, _ := data["status"].(string); status != "failed" {
		return "", false
	}
	if msg, ok := data["error"].(string); ok && msg != "" {
		return msg, true
	}
	return "workflow failed", true
}

// nestedOutputsField reads data.outputs.<key>
func nestedOutputsField(key string) Extractor {
	return func(body map[string]any) (string, bool) {
		data, ok := body["data"].(map[string]any)
		if !ok {
			return "", false
		}
		outputs, ok := data["outputs"].(map[string]any)
		if !ok {
			return "", false
		}
		return nonEmptyString(outputs[key])
	}
}

// nestedOutputsString reads data.outputs when it is a plain string
func nestedOutputsString(body map[string]any) (string, bool) {
	data, ok := body["data"].(map[string]any)
	if !ok {
		return "", false
	}
	s, ok := data["outputs"].(string)
	return s, ok
}

// topLevelOutputsField reads outputs.<key> at the root of the body
func topLevelOutputsField(key string) Extractor {
	return func(body map[string]any) (string, bool) {
		outputs, ok := body["outputs"].(map[string]any)
		if !ok {
			return "", false
		}
		return nonEmptyString(outputs[key])
	}
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	}
	return true
}
