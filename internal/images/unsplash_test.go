// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package images

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// newUnsplashServer serves a canned search response with n photos and counts
// search and download-tracking hits. The download URLs point back at the
// server itself.
func newUnsplashServer(t *testing.T, photos int, searches, downloads *atomic.Int32, failDownloads bool) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/search/photos"):
			searches.Add(1)
			if got := r.Header.Get("Authorization"); got != "Client-ID test-key" {
				t.Errorf("Authorization = %q, want Client-ID scheme", got)
			}
			var results []string
			for i := 0; i < photos; i++ {
				results = append(results, fmt.Sprintf(`{
					"description": "photo %[1]d",
					"alt_description": "alt %[1]d",
					"urls": {"regular": "https://images.example.com/%[1]d"},
					"links": {"html": "https://unsplash.com/photos/%[1]d", "download_location": "%[2]s/download/%[1]d"},
					"user": {"name": "Photographer %[1]d", "links": {"html": "https://unsplash.com/@p%[1]d"}}
				}`, i, srv.URL))
			}
			fmt.Fprintf(w, `{"results": [%s]}`, strings.Join(results, ","))
		case strings.HasPrefix(r.URL.Path, "/download/"):
			downloads.Add(1)
			if failDownloads {
				w.WriteHeader(http.StatusForbidden)
			}
		default:
			http.NotFound(w, r)
		}
	}))
	return srv
}

func TestFetchZeroCountSkipsService(t *testing.T) {
	var searches, downloads atomic.Int32
	srv := newUnsplashServer(t, 3, &searches, &downloads, false)
	defer srv.Close()
	t.Cleanup(setAPIBase(srv.URL))

	c := &Client{AccessKey: "test-key", HTTP: srv.Client(), Warn: &bytes.Buffer{}}
	got, err := c.Fetch(context.Background(), "docker", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("Fetch(0) = %v, want nil", got)
	}
	if searches.Load() != 0 {
		t.Errorf("search requests = %d, want 0", searches.Load())
	}
}

func TestFetchReturnsAttributionAndTracksDownloads(t *testing.T) {
	var searches, downloads atomic.Int32
	srv := newUnsplashServer(t, 2, &searches, &downloads, false)
	defer srv.Close()
	t.Cleanup(setAPIBase(srv.URL))

	var warn bytes.Buffer
	c := &Client{AccessKey: "test-key", HTTP: srv.Client(), Warn: &warn}
	got, err := c.Fetch(context.Background(), "docker", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(images) = %d, want 2", len(got))
	}

	img := got[0]
	if img.URL != "https://images.example.com/0" {
		t.Errorf("URL = %q", img.URL)
	}
	if img.AltText != "alt 0" {
		t.Errorf("AltText = %q, want alt_description", img.AltText)
	}
	if img.PhotographerName != "Photographer 0" || img.PhotographerURL != "https://unsplash.com/@p0" {
		t.Errorf("attribution = %q / %q", img.PhotographerName, img.PhotographerURL)
	}
	if img.PhotoPageURL != "https://unsplash.com/photos/0" {
		t.Errorf("PhotoPageURL = %q", img.PhotoPageURL)
	}

	if downloads.Load() != 2 {
		t.Errorf("download pings = %d, want one per selected image", downloads.Load())
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warnings: %s", warn.String())
	}
}

func TestFetchCapsCount(t *testing.T) {
	var searches, downloads atomic.Int32
	srv := newUnsplashServer(t, 3, &searches, &downloads, false)
	defer srv.Close()
	t.Cleanup(setAPIBase(srv.URL))

	c := &Client{AccessKey: "test-key", HTTP: srv.Client(), Warn: &bytes.Buffer{}}
	got, err := c.Fetch(context.Background(), "docker", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("len(images) = %d, want the cap of 3", len(got))
	}
}

func TestFetchDownloadTrackingFailureIsNotFatal(t *testing.T) {
	var searches, downloads atomic.Int32
	srv := newUnsplashServer(t, 1, &searches, &downloads, true)
	defer srv.Close()
	t.Cleanup(setAPIBase(srv.URL))

	var warn bytes.Buffer
	c := &Client{AccessKey: "test-key", HTTP: srv.Client(), Warn: &warn}
	got, err := c.Fetch(context.Background(), "docker", 1)
	if err != nil {
		t.Fatalf("tracking failure must not fail the fetch: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(images) = %d, want 1", len(got))
	}
	if !strings.Contains(warn.String(), "download tracking failed") {
		t.Errorf("expected a tracking warning, got %q", warn.String())
	}
}

func TestFetchSearchErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()
	t.Cleanup(setAPIBase(srv.URL))

	c := &Client{AccessKey: "bad-key", HTTP: srv.Client(), Warn: &bytes.Buffer{}}
	_, err := c.Fetch(context.Background(), "docker", 1)
	if err == nil {
		t.Fatal("expected an error for HTTP 401")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error = %v, should mention the status", err)
	}
}

// setAPIBase swaps the package-level endpoint and returns a restore func.
func setAPIBase(url string) func() {
	old := unsplashAPIBase
	unsplashAPIBase = url
	return func() { unsplashAPIBase = old }
}
