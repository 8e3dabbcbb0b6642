package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wallet-tracker/backend/internal/application/adapter"
)

const cloudinaryUploadURL = "https://api.cloudinary.com/v1_1/%s/image/upload"

// cloudinaryService implements the adapter.ImageService interface against the
// Cloudinary unsigned upload API.
type cloudinaryService struct {
	cloudName    string
	uploadPreset string
	client       *http.Client
}

// NewCloudinaryService creates a new Cloudinary image service instance.
func NewCloudinaryService(cloudName, uploadPreset string) adapter.ImageService {
	return &cloudinaryService{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload sends a local file to Cloudinary and returns its secure URL. Sources
// that are already remote URLs are returned unchanged.
func (s *cloudinaryService) Upload(ctx context.Context, source, folder string) (string, error) {
	if strings.HasPrefix(source, "http") {
		return source, nil
	}

	file, err := os.Open(source)
	if err != nil {
		return "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(source))
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read image file: %w", err)
	}
	if err := writer.WriteField("upload_preset", s.uploadPreset); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.WriteField("folder", folder); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	url := fmt.Sprintf(cloudinaryUploadURL, s.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("image upload failed with status %d: %s", resp.StatusCode, payload)
	}

	var uploadResp struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if uploadResp.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}

	return uploadResp.SecureURL, nil
}
