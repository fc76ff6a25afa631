package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"wallcheck/internal/config"
	"wallcheck/internal/model"
)

func sampleAnalyzeRequest() *model.AnalyzeRequest {
	return &model.AnalyzeRequest{
		Scores: model.WireScores{
			HumanInternal:       "3.40",
			ResourceInternal:    "2.00",
			HumanExternal:       "5.80",
			EnvironmentExternal: "1.00",
		},
		BottleneckAxis:  model.AxisEnvironmentExternal,
		LowestQuestions: "Q2(1.0), Q6(1.0), Q11(5.0), Q16(1.0)",
		FreeText:        "management is skeptical",
	}
}

func newTestWorkflowService(url, key string) *WorkflowService {
	svc := NewWorkflowService(&config.WorkflowConfig{APIKey: key, URL: url, TimeoutMS: 2000})
	svc.newUserID = func() string { return "user-test" }
	return svc
}

func TestWorkflowServiceRunSendsNormalizedRequest(t *testing.T) {
	var got model.WorkflowRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer app-secret" {
			t.Errorf("authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"status":"succeeded","outputs":{"text":"# Report"}}}`))
	}))
	defer upstream.Close()

	out, err := newTestWorkflowService(upstream.URL, "app-secret").Run(context.Background(), sampleAnalyzeRequest())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Analysis != "# Report" {
		t.Fatalf("analysis = %q", out.Analysis)
	}
	if !strings.Contains(string(out.Raw), `"succeeded"`) {
		t.Fatalf("raw = %s", out.Raw)
	}

	want := model.WorkflowRequest{
		Inputs: model.WorkflowInputs{
			HumanInternal:       "3.40",
			ResourceInternal:    "2.00",
			HumanExternal:       "5.80",
			EnvironmentExternal: "1.00",
			BottleneckAxis:      "environment_external",
			LowestQuestions:     "Q2(1.0), Q6(1.0), Q11(5.0), Q16(1.0)",
			FreeText:            "management is skeptical",
		},
		ResponseMode: "blocking",
		User:         "user-test",
	}
	if got != want {
		t.Fatalf("upstream body = %+v, want %+v", got, want)
	}
}

func TestWorkflowServiceMissingKeyNeverCallsUpstream(t *testing.T) {
	var calls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer upstream.Close()

	_, err := newTestWorkflowService(upstream.URL, "").Run(context.Background(), sampleAnalyzeRequest())
	if !errors.Is(err, ErrWorkflowNotConfigured) {
		t.Fatalf("err = %v, want ErrWorkflowNotConfigured", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("upstream must not be called without a credential")
	}
}

func TestWorkflowServiceRunFailures(t *testing.T) {
	for _, tc := range []struct {
		name       string
		status     int
		body       string
		wantFailed string
	}{
		{name: "workflow failed", status: 200, body: `{"data":{"status":"failed","error":"LLM node timeout"}}`, wantFailed: "LLM node timeout"},
		{name: "not json", status: 200, body: `<html>bad gateway</html>`},
		{name: "http error", status: 401, body: `{"code":"unauthorized","message":"Access token is invalid"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer upstream.Close()

			_, err := newTestWorkflowService(upstream.URL, "k").Run(context.Background(), sampleAnalyzeRequest())
			if err == nil {
				t.Fatal("expected an error")
			}
			var wf *WorkflowFailedError
			isFailed := errors.As(err, &wf)
			if tc.wantFailed != "" {
				if !isFailed || wf.Message != tc.wantFailed {
					t.Fatalf("err = %v, want workflow failure %q", err, tc.wantFailed)
				}
				return
			}
			if isFailed {
				t.Fatalf("transport problem reported as workflow failure: %v", err)
			}
		})
	}
}

func TestWorkflowServiceRunSerializesNonObjectBodies(t *testing.T) {
	for _, tc := range []struct {
		body string
		want string
	}{
		{body: `["a","b"]`, want: "[\n  \"a\",\n  \"b\"\n]"},
		{body: `"plain <text>"`, want: `"plain <text>"`},
	} {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(tc.body))
		}))

		out, err := newTestWorkflowService(upstream.URL, "k").Run(context.Background(), sampleAnalyzeRequest())
		upstream.Close()
		if err != nil {
			t.Fatalf("body %s: %v", tc.body, err)
		}
		if out.Analysis != tc.want {
			t.Fatalf("body %s: analysis = %q, want %q", tc.body, out.Analysis, tc.want)
		}
		if string(out.Raw) != tc.body {
			t.Fatalf("raw = %s", out.Raw)
		}
	}
}

func TestWorkflowServiceUserIDIsUnique(t *testing.T) {
	svc := NewWorkflowService(&config.WorkflowConfig{APIKey: "k", URL: "http://unused"})
	a := svc.BuildRequest(sampleAnalyzeRequest()).User
	b := svc.BuildRequest(sampleAnalyzeRequest()).User
	if a == b {
		t.Fatalf("user ids collide: %s", a)
	}
	if !strings.HasPrefix(a, "user-") {
		t.Fatalf("user id = %q", a)
	}
}
