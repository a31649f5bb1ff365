package libs

import (
	"bytes"
	"classifieds/utils"
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore keeps images in a Cloudinary folder. The stored name
// "<uuid>.<ext>" maps to public ID "<folder>/<uuid>".
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
	client *http.Client
}

func NewCloudinaryStore(cloudinaryURL, folder string) (*CloudinaryStore, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary environment variables not set")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init from URL fail: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryStore{cld: cld, folder: folder, client: http.DefaultClient}, nil
}

func (s *CloudinaryStore) publicID(name string) (string, error) {
	if err := utils.CheckFileName(name); err != nil {
		return "", fmt.Errorf("%w: %w", fs.ErrNotExist, err)
	}
	return s.folder + "/" + strings.TrimSuffix(name, filepath.Ext(name)), nil
}

func (s *CloudinaryStore) Save(ctx context.Context, name string, data []byte) error {
	publicID, err := s.publicID(name)
	if err != nil {
		return err
	}
	overwrite := true
	resp, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     publicID,
		ResourceType: "image",
		Overwrite:    &overwrite,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("cloudinary upload failed: %s", resp.Error.Message)
	}
	return nil
}

func (s *CloudinaryStore) Read(ctx context.Context, name string) ([]byte, error) {
	publicID, err := s.publicID(name)
	if err != nil {
		return nil, err
	}
	img, err := s.cld.Image(publicID)
	if err != nil {
		return nil, fmt.Errorf("failed to build cloudinary asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return nil, fmt.Errorf("failed to build cloudinary URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", publicID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", publicID, fs.ErrNotExist)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("cloudinary returned %s for %s", resp.Status, publicID)
	}
	return io.ReadAll(resp.Body)
}

func (s *CloudinaryStore) Delete(ctx context.Context, name string) error {
	publicID, err := s.publicID(name)
	if err != nil {
		return err
	}
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}
