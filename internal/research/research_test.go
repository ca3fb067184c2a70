// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/auto-blogger/pkg/types"
)

// --- mock backend ---

type mockBackend struct {
	name     string
	snippets []types.ResearchSnippet
	err      error
	delay    time.Duration
}

func (m *mockBackend) Name() string { return m.name }

func (m *mockBackend) Gather(ctx context.Context, _ string) ([]types.ResearchSnippet, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return m.snippets, m.err
}

func snippet(title string) types.ResearchSnippet {
	return types.ResearchSnippet{Title: title, Source: "http://" + title, Excerpt: "text about " + title}
}

func TestGatherNoBackends(t *testing.T) {
	var warn bytes.Buffer
	got := Gather(context.Background(), "docker", nil, time.Second, &warn)
	if got != nil {
		t.Errorf("Gather() = %v, want nil", got)
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warnings: %s", warn.String())
	}
}

func TestGatherPreservesServerListOrder(t *testing.T) {
	// The first backend is slower than the second; its snippets must still
	// come first.
	backends := []Backend{
		&mockBackend{name: "a", delay: 50 * time.Millisecond, snippets: []types.ResearchSnippet{snippet("a1"), snippet("a2")}},
		&mockBackend{name: "b", snippets: []types.ResearchSnippet{snippet("b1")}},
	}

	var warn bytes.Buffer
	got := Gather(context.Background(), "docker", backends, time.Second, &warn)

	want := []string{"a1", "a2", "b1"}
	if len(got) != len(want) {
		t.Fatalf("len(snippets) = %d, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("snippets[%d].Title = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestGatherSkipsFailingBackends(t *testing.T) {
	backends := []Backend{
		&mockBackend{name: "http://down.example.com", err: fmt.Errorf("connection refused")},
		&mockBackend{name: "http://up.example.com", snippets: []types.ResearchSnippet{snippet("ok")}},
	}

	var warn bytes.Buffer
	got := Gather(context.Background(), "docker", backends, time.Second, &warn)

	if len(got) != 1 || got[0].Title != "ok" {
		t.Errorf("snippets = %v, want the one from the healthy backend", got)
	}
	if !strings.Contains(warn.String(), "http://down.example.com") {
		t.Errorf("warning should name the failed server, got %q", warn.String())
	}
}

func TestGatherAllBackendsFail(t *testing.T) {
	backends := []Backend{
		&mockBackend{name: "a", err: fmt.Errorf("boom")},
		&mockBackend{name: "b", err: fmt.Errorf("boom")},
	}

	var warn bytes.Buffer
	got := Gather(context.Background(), "docker", backends, time.Second, &warn)

	if len(got) != 0 {
		t.Errorf("snippets = %v, want empty", got)
	}
	if n := strings.Count(warn.String(), "warning:"); n != 2 {
		t.Errorf("warning count = %d, want 2", n)
	}
}

func TestGatherHonorsTimeout(t *testing.T) {
	backends := []Backend{
		&mockBackend{name: "slow", delay: 2 * time.Second, snippets: []types.ResearchSnippet{snippet("late")}},
	}

	var warn bytes.Buffer
	start := time.Now()
	got := Gather(context.Background(), "docker", backends, 20*time.Millisecond, &warn)

	if len(got) != 0 {
		t.Errorf("snippets = %v, want empty after timeout", got)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Gather took %v, should be bounded by the per-server timeout", elapsed)
	}
}

// --- FormatContext ---

func TestFormatContextEmpty(t *testing.T) {
	if got := FormatContext(nil); got != "" {
		t.Errorf("FormatContext(nil) = %q, want empty", got)
	}
}

func TestFormatContext(t *testing.T) {
	snippets := []types.ResearchSnippet{
		{Title: "Docker layers", Source: "http://mcp1", Excerpt: "Layers are cached."},
		{Title: "Networking", Source: "http://mcp2", Excerpt: "Bridge is the default."},
	}

	got := FormatContext(snippets)

	for _, want := range []string{
		"## Reference Materials",
		"### Source 1: Docker layers",
		"### Source 2: Networking",
		"http://mcp1",
		"Layers are cached.",
		"Bridge is the default.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatContext missing %q in:\n%s", want, got)
		}
	}
}
