// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// ImageService defines the interface for receipt/icon image uploads.
type ImageService interface {
	// Upload uploads a local file to the image CDN under the given folder and
	// returns the resulting remote URL. Sources that are already remote URLs
	// are returned unchanged without a network call.
	Upload(ctx context.Context, source, folder string) (string, error)
}
