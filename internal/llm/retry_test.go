package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bauwerk-digital/contracts-tracker/internal/common"
)

type scriptedGenerator struct {
	calls   int
	results []error
	text    string
}

func (s *scriptedGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	err := s.results[s.calls]
	s.calls++
	if err != nil {
		return "", err
	}
	return s.text, nil
}

func TestWithRetryDisabled(t *testing.T) {
	inner := &scriptedGenerator{}
	if got := WithRetry(inner, 0, time.Millisecond, nil); got != Generator(inner) {
		t.Error("maxRetries=0 should return the generator unchanged")
	}
}

func TestWithRetryRecoversFromBackendError(t *testing.T) {
	inner := &scriptedGenerator{
		results: []error{common.BackendError(500, "Internal Server Error"), nil},
		text:    "{}",
	}
	g := WithRetry(inner, 2, time.Millisecond, nil)

	got, err := g.Generate(context.Background(), GenerateRequest{Prompt: "p"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "{}" || inner.calls != 2 {
		t.Errorf("got %q after %d calls, want {} after 2", got, inner.calls)
	}
}

func TestWithRetryGivesUpAfterBudget(t *testing.T) {
	backend := common.BackendError(502, "Bad Gateway")
	inner := &scriptedGenerator{results: []error{backend, backend, backend}}
	g := WithRetry(inner, 2, time.Millisecond, nil)

	_, err := g.Generate(context.Background(), GenerateRequest{})
	if !errors.Is(err, common.ErrBackend) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestWithRetryDoesNotRetryMalformedOutput(t *testing.T) {
	inner := &scriptedGenerator{
		results: []error{common.MalformedOutput(errors.New("boom")), nil},
	}
	g := WithRetry(inner, 3, time.Millisecond, nil)

	_, err := g.Generate(context.Background(), GenerateRequest{})
	if !errors.Is(err, common.ErrMalformedOutput) {
		t.Fatalf("expected malformed-output error, got %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", inner.calls)
	}
}

func TestWithRetryRetriesEmptyResponse(t *testing.T) {
	inner := &scriptedGenerator{
		results: []error{common.NewAppError("EMPTY_RESPONSE", "no text", common.ErrEmptyResponse), nil},
		text:    "ok",
	}
	g := WithRetry(inner, 1, time.Millisecond, nil)

	got, err := g.Generate(context.Background(), GenerateRequest{})
	if err != nil || got != "ok" {
		t.Fatalf("got (%q, %v), want recovered response", got, err)
	}
}
