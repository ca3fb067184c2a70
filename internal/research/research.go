// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research gathers reference snippets for a topic from configured
// research servers. The stage is enrichment only: unreachable or erroring
// servers are skipped with a warning and never abort a run.
package research

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/auto-blogger/pkg/types"
)

// Backend queries a single research server. MCPBackend is the production
// implementation; tests supply mocks.
type Backend interface {
	Name() string
	Gather(ctx context.Context, topic string) ([]types.ResearchSnippet, error)
}

// Gather fans the topic out to all backends concurrently and joins before
// returning. Snippets keep server-list order, and within one server's
// response the source order is preserved. Duplicate snippets across servers
// are not merged. Per-server failures are downgraded to warnings on w; the
// result is empty when no backends are configured or all fail.
func Gather(ctx context.Context, topic string, backends []Backend, timeout time.Duration, w io.Writer) []types.ResearchSnippet {
	if len(backends) == 0 {
		return nil
	}

	// Indexed by backend so the join preserves server-list order.
	perBackend := make([][]types.ResearchSnippet, len(backends))

	var wg sync.WaitGroup
	for i, b := range backends {
		wg.Add(1)
		go func(i int, b Backend) {
			defer wg.Done()
			gctx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				gctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			snippets, err := b.Gather(gctx, topic)
			if err != nil {
				fmt.Fprintf(w, "warning: research server %s failed: %v\n", b.Name(), err)
				return
			}
			perBackend[i] = snippets
		}(i, b)
	}
	wg.Wait()

	var all []types.ResearchSnippet
	for _, snippets := range perBackend {
		all = append(all, snippets...)
	}
	return all
}

// FormatContext renders snippets as a reference-materials section for the
// generation prompt. Returns "" for an empty list.
func FormatContext(snippets []types.ResearchSnippet) string {
	if len(snippets) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Reference Materials\n")
	for i, s := range snippets {
		fmt.Fprintf(&b, "\n### Source %d: %s\n", i+1, s.Title)
		if s.Source != "" {
			fmt.Fprintf(&b, "Origin: %s\n", s.Source)
		}
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(s.Excerpt))
		b.WriteString("\n")
	}
	return b.String()
}
