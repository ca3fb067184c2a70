// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ImageResult is a photo selected for a post, with the attribution metadata
// the image service's usage terms require.
type ImageResult struct {
	// URL is the display URL of the photo.
	URL string `json:"url" yaml:"url"`

	// AltText describes the photo for the Markdown alt attribute.
	AltText string `json:"alt_text" yaml:"alt_text"`

	// PhotographerName credits the photographer.
	PhotographerName string `json:"photographer_name" yaml:"photographer_name"`

	// PhotographerURL links to the photographer's profile.
	PhotographerURL string `json:"photographer_url" yaml:"photographer_url"`

	// PhotoPageURL links to the photo's page on the image service.
	PhotoPageURL string `json:"photo_page_url" yaml:"photo_page_url"`

	// DownloadURL is the download-tracking endpoint that must be pinged
	// once the photo is used.
	DownloadURL string `json:"download_url" yaml:"download_url"`
}
