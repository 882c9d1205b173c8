package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Model identifiers per payload shape.
const (
	visionModelName   = "gemini-1.5-flash"
	documentModelName = "gemini-1.5-pro"
	chatModelName     = "gemini-2.5-flash"
)

// generateTimeout bounds the single outbound call; expiry classifies as
// FaultUnavailable.
const generateTimeout = 30 * time.Second

// Fault is the closed set of upstream failure kinds produced by the caller
// that performs the network call.
type Fault int

const (
	FaultNone Fault = iota
	FaultNoCredentials
	FaultInvalidKey
	FaultQuotaExceeded
	FaultUnavailable
	FaultModelNotFound
	FaultUnknown
)

// GenerateResult carries either model text or a classified fault with the
// underlying detail.
type GenerateResult struct {
	Text   string
	Fault  Fault
	Detail string
}

// ModelCaller performs the single outbound generation call. Implementations
// classify their own failures so the gateway maps over a closed set of kinds.
type ModelCaller interface {
	Generate(ctx context.Context, model string, parts ...genai.Part) GenerateResult
}

// GeminiCaller is the Gemini-backed ModelCaller. A nil client (no credential
// configured) short-circuits every call with FaultNoCredentials.
type GeminiCaller struct {
	client *genai.Client
}

func NewGeminiCaller(ctx context.Context, apiKey string) (*GeminiCaller, error) {
	if apiKey == "" {
		return &GeminiCaller{}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCaller{client: client}, nil
}

func (c *GeminiCaller) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

func (c *GeminiCaller) Generate(ctx context.Context, model string, parts ...genai.Part) GenerateResult {
	if c.client == nil {
		return GenerateResult{Fault: FaultNoCredentials}
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := c.client.GenerativeModel(model).GenerateContent(ctx, parts...)
	if err != nil {
		return GenerateResult{Fault: classifyFault(err), Detail: err.Error()}
	}

	text := extractText(resp)
	if text == "" {
		return GenerateResult{Fault: FaultUnknown, Detail: "model returned an empty response"}
	}
	return GenerateResult{Text: text}
}

// classifyFault maps an upstream failure to a Fault. The structured googleapi
// status code is the primary signal; substring matching on the message is the
// fallback for transport-level and SDK-level errors.
func classifyFault(err error) Fault {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return FaultInvalidKey
		case 429:
			return FaultQuotaExceeded
		case 404:
			return FaultModelNotFound
		case 500, 502, 503, 504:
			return FaultUnavailable
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return FaultUnavailable
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "API_KEY_INVALID") || strings.Contains(msg, "403"):
		return FaultInvalidKey
	case strings.Contains(msg, "429") || strings.Contains(lower, "quota"):
		return FaultQuotaExceeded
	case strings.Contains(msg, "503") || strings.Contains(lower, "unavailable"):
		return FaultUnavailable
	case strings.Contains(lower, "model not found"):
		return FaultModelNotFound
	}
	return FaultUnknown
}

func extractText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// Advisory strings returned in place of raw upstream failures.
const (
	adviceServiceUnavailable = "⚠️ Health information service is currently unavailable. Please try again later."
	adviceInvalidKey         = "⚠️ Invalid Gemini API key. Please check your .env file configuration."
	adviceQuotaExceeded      = "⚠️ API quota exceeded. Please try again later or check your Google Cloud billing."
	adviceTemporarilyDown    = "⚠️ Gemini API service temporarily unavailable. Please try again in a moment."
	adviceModelNotFound      = "⚠️ Model not found. Please use 'gemini-2.0-flash' or 'gemini-1.5-flash' instead."
)

// Gateway invokes the model caller and converts every fault into a fixed
// user-facing advisory. It never returns an error; ok reports whether the
// text is a real model answer.
type Gateway struct {
	caller ModelCaller
}

func NewGateway(caller ModelCaller) *Gateway {
	return &Gateway{caller: caller}
}

func (g *Gateway) Generate(ctx context.Context, model string, parts ...genai.Part) (text string, ok bool) {
	res := g.caller.Generate(ctx, model, parts...)
	if res.Fault == FaultNone {
		return res.Text, true
	}

	if res.Fault != FaultNoCredentials {
		log.Printf("🔥 Gemini API fault (kind=%d): %s", res.Fault, res.Detail)
	}
	return advisoryFor(res.Fault, res.Detail), false
}

func advisoryFor(fault Fault, detail string) string {
	switch fault {
	case FaultNoCredentials:
		return adviceServiceUnavailable
	case FaultInvalidKey:
		return adviceInvalidKey
	case FaultQuotaExceeded:
		return adviceQuotaExceeded
	case FaultUnavailable:
		return adviceTemporarilyDown
	case FaultModelNotFound:
		return adviceModelNotFound
	default:
		detail = capChars(detail, 100)
		return fmt.Sprintf("⚠️ I'm experiencing difficulties connecting to the health information service. Error: %s", detail)
	}
}
