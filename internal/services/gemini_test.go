package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
)

func TestClassifyFaultStatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected Fault
	}{
		{"forbidden", 403, FaultInvalidKey},
		{"unauthorized", 401, FaultInvalidKey},
		{"rate limited", 429, FaultQuotaExceeded},
		{"model not found", 404, FaultModelNotFound},
		{"service unavailable", 503, FaultUnavailable},
		{"bad gateway", 502, FaultUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := &googleapi.Error{Code: tc.code, Message: "upstream fault"}
			if got := classifyFault(err); got != tc.expected {
				t.Errorf("Expected fault %d for code %d, got %d", tc.expected, tc.code, got)
			}
		})
	}
}

func TestClassifyFaultSubstringFallback(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Fault
	}{
		{"invalid key marker", errors.New("rpc error: API_KEY_INVALID"), FaultInvalidKey},
		{"quota wording", errors.New("resource quota exhausted"), FaultQuotaExceeded},
		{"unavailable wording", errors.New("transport: service unavailable"), FaultUnavailable},
		{"missing model", errors.New("requested model not found"), FaultModelNotFound},
		{"timeout", context.DeadlineExceeded, FaultUnavailable},
		{"anything else", errors.New("connection reset by peer"), FaultUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyFault(tc.err); got != tc.expected {
				t.Errorf("Expected fault %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestAdvisoryForIsStable(t *testing.T) {
	// The same fault signature always maps to the same advisory text.
	faults := []Fault{FaultNoCredentials, FaultInvalidKey, FaultQuotaExceeded, FaultUnavailable, FaultModelNotFound}
	for _, f := range faults {
		first := advisoryFor(f, "detail one")
		second := advisoryFor(f, "detail two")
		if first != second {
			t.Errorf("Expected stable advisory for fault %d, got %q vs %q", f, first, second)
		}
		if first == "" {
			t.Errorf("Expected non-empty advisory for fault %d", f)
		}
	}
}

func TestAdvisoryForUnknownTruncatesDetail(t *testing.T) {
	detail := strings.Repeat("x", 300)

	advisory := advisoryFor(FaultUnknown, detail)

	if !strings.Contains(advisory, strings.Repeat("x", 100)) {
		t.Error("Expected advisory to include the truncated detail")
	}
	if strings.Contains(advisory, strings.Repeat("x", 101)) {
		t.Error("Expected detail excerpt to be capped at 100 chars")
	}
}

type fakeCaller struct {
	result GenerateResult
	calls  int
	model  string
}

func (f *fakeCaller) Generate(ctx context.Context, model string, parts ...genai.Part) GenerateResult {
	f.calls++
	f.model = model
	return f.result
}

func TestGatewaySuccess(t *testing.T) {
	caller := &fakeCaller{result: GenerateResult{Text: "Hypertension is elevated blood pressure."}}
	gateway := NewGateway(caller)

	text, ok := gateway.Generate(context.Background(), chatModelName, genai.Text("prompt"))

	if !ok {
		t.Fatal("Expected ok for a successful call")
	}
	if text != "Hypertension is elevated blood pressure." {
		t.Errorf("Unexpected text %q", text)
	}
	if caller.calls != 1 {
		t.Errorf("Expected a single attempt, got %d", caller.calls)
	}
}

func TestGatewayNoCredentials(t *testing.T) {
	caller := &fakeCaller{result: GenerateResult{Fault: FaultNoCredentials}}
	gateway := NewGateway(caller)

	text, ok := gateway.Generate(context.Background(), chatModelName, genai.Text("prompt"))

	if ok {
		t.Fatal("Expected not-ok for an unconfigured service")
	}
	if text != adviceServiceUnavailable {
		t.Errorf("Expected service-unavailable advisory, got %q", text)
	}
}

func TestGatewayUnconfiguredCallerShortCircuits(t *testing.T) {
	caller, err := NewGeminiCaller(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	defer caller.Close()

	res := caller.Generate(context.Background(), chatModelName, genai.Text("prompt"))
	if res.Fault != FaultNoCredentials {
		t.Errorf("Expected FaultNoCredentials without an API key, got %d", res.Fault)
	}
}
