// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package images fetches post images from the Unsplash API with the
// attribution metadata its usage terms require.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pdiddy/auto-blogger/pkg/types"
)

// unsplashAPIBase is the Unsplash API endpoint. Declared as a var so tests
// can substitute an httptest server.
var unsplashAPIBase = "https://api.unsplash.com"

// maxImages caps the number of images per post.
const maxImages = 3

// Client talks to the Unsplash search API.
type Client struct {
	// AccessKey authenticates requests via the Client-ID scheme.
	AccessKey string

	// HTTP is the HTTP client used for all calls.
	HTTP *http.Client

	// Warn receives non-fatal notices such as download-tracking failures.
	Warn io.Writer
}

// Fetch searches landscape photos for the keyword and returns at most count
// results (0 <= count <= 3). For every selected photo the download-tracking
// endpoint is pinged best-effort, as the API terms require; a tracking
// failure is warned about, never returned. count = 0 returns nil without
// contacting the service.
func (c *Client) Fetch(ctx context.Context, keyword string, count int) ([]types.ImageResult, error) {
	if count <= 0 {
		return nil, nil
	}
	if count > maxImages {
		count = maxImages
	}

	results, err := c.search(ctx, keyword, count)
	if err != nil {
		return nil, err
	}
	if len(results) > count {
		results = results[:count]
	}

	for _, img := range results {
		if err := c.trackDownload(ctx, img.DownloadURL); err != nil && c.Warn != nil {
			fmt.Fprintf(c.Warn, "warning: download tracking failed for %s: %v\n", img.PhotoPageURL, err)
		}
	}
	return results, nil
}

func (c *Client) search(ctx context.Context, keyword string, count int) ([]types.ImageResult, error) {
	u := fmt.Sprintf("%s/search/photos?query=%s&per_page=%d&orientation=landscape",
		unsplashAPIBase, url.QueryEscape(keyword), count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image search returned HTTP %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing image search response: %w", err)
	}

	var results []types.ImageResult
	for _, photo := range body.Results {
		alt := photo.AltDescription
		if alt == "" {
			alt = photo.Description
		}
		if alt == "" {
			alt = keyword
		}
		results = append(results, types.ImageResult{
			URL:              photo.URLs.Regular,
			AltText:          alt,
			PhotographerName: photo.User.Name,
			PhotographerURL:  photo.User.Links.HTML,
			PhotoPageURL:     photo.Links.HTML,
			DownloadURL:      photo.Links.DownloadLocation,
		})
	}
	return results, nil
}

// trackDownload pings the photo's download_location endpoint.
func (c *Client) trackDownload(ctx context.Context, downloadURL string) error {
	if downloadURL == "" {
		return fmt.Errorf("empty download URL")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Client-ID "+c.AccessKey)
	req.Header.Set("Accept-Version", "v1")
}

// Unsplash search response structures, limited to the fields used.
type searchResponse struct {
	Results []searchPhoto `json:"results"`
}

type searchPhoto struct {
	Description    string `json:"description"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Regular string `json:"regular"`
	} `json:"urls"`
	Links struct {
		HTML             string `json:"html"`
		DownloadLocation string `json:"download_location"`
	} `json:"links"`
	User struct {
		Name  string `json:"name"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"user"`
}
