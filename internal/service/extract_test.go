package service

import (
	"encoding/json"
	"strings"
	"testing"
)

func decodeBody(t *testing.T, raw string) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return body
}

func TestExtractAnalysisLayouts(t *testing.T) {
	for _, tc := range []struct {
		name string
		raw  string
		want string
	}{
		{name: "nested text", raw: `{"data":{"outputs":{"text":"from text","result":"from result"}}}`, want: "from text"},
		{name: "nested result", raw: `{"data":{"outputs":{"result":"from result"}}}`, want: "from result"},
		{name: "empty text falls through", raw: `{"data":{"outputs":{"text":"","result":"from result"}}}`, want: "from result"},
		{name: "outputs string", raw: `{"data":{"outputs":"plain outputs"}}`, want: "plain outputs"},
		{name: "top level text", raw: `{"outputs":{"text":"top level"}}`, want: "top level"},
		{name: "nested wins over top level", raw: `{"data":{"outputs":{"text":"nested"}},"outputs":{"text":"top"}}`, want: "nested"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractAnalysis(decodeBody(t, tc.raw), DefaultExtractors); got != tc.want {
				t.Fatalf("ExtractAnalysis = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractAnalysisSerializesUnknownLayouts(t *testing.T) {
	got := ExtractAnalysis(decodeBody(t, `{"data":{"outputs":{"report":"x"}}}`), DefaultExtractors)
	if got != "{\n  \"report\": \"x\"\n}" {
		t.Fatalf("outputs fallback = %q", got)
	}

	whole := ExtractAnalysis(decodeBody(t, `{"message":"odd"}`), DefaultExtractors)
	if !strings.Contains(whole, `"message": "odd"`) {
		t.Fatalf("body fallback = %q", whole)
	}
}

func TestExtractAnalysisKeepsMarkupCharacters(t *testing.T) {
	got := ExtractAnalysis(decodeBody(t, `{"data":{"outputs":{"report":"a < b & c > d"}}}`), DefaultExtractors)
	if got != "{\n  \"report\": \"a < b & c > d\"\n}" {
		t.Fatalf("fallback = %q", got)
	}
}

func TestExtractAnalysisNonObjectBody(t *testing.T) {
	var arr any
	if err := json.Unmarshal([]byte(`[1,2]`), &arr); err != nil {
		t.Fatal(err)
	}
	if got := ExtractAnalysis(arr, DefaultExtractors); got != "[\n  1,\n  2\n]" {
		t.Fatalf("array body = %q", got)
	}
	if _, failed := WorkflowFailure(arr); failed {
		t.Fatal("array body must not count as a failed run")
	}
}

func TestExtractAnalysisCustomChain(t *testing.T) {
	answer := func(body map[string]any) (string, bool) {
		s, ok := body["answer"].(string)
		return s, ok
	}
	chain := append([]Extractor{answer}, DefaultExtractors...)
	if got := ExtractAnalysis(decodeBody(t, `{"answer":"chat style","data":{"outputs":{"text":"t"}}}`), chain); got != "chat style" {
		t.Fatalf("custom extractor not used first: %q", got)
	}
}

func TestWorkflowFailure(t *testing.T) {
	msg, failed := WorkflowFailure(decodeBody(t, `{"data":{"status":"failed","error":"node crashed"}}`))
	if !failed || msg != "node crashed" {
		t.Fatalf("got %q, %v", msg, failed)
	}

	msg, failed = WorkflowFailure(decodeBody(t, `{"data":{"status":"failed"}}`))
	if !failed || msg != "workflow failed" {
		t.Fatalf("default message: got %q, %v", msg, failed)
	}

	if _, failed := WorkflowFailure(decodeBody(t, `{"data":{"status":"succeeded"}}`)); failed {
		t.Fatal("succeeded run reported as failure")
	}
	if _, failed := WorkflowFailure(decodeBody(t, `{"outputs":{}}`)); failed {
		t.Fatal("missing data reported as failure")
	}
}
