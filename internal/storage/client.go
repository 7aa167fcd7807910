package storage

import (
	"bytes"
	"fmt"

	storage "github.com/supabase-community/storage-go"
)

// Client wraps the Supabase Storage API for a single bucket. The underlying
// storage-go client is a plain HTTP client and safe for concurrent use, so
// no external locking is needed around blob operations.
type Client struct {
	client *storage.Client
	bucket string
}

func NewClient(supabaseURL, serviceKey, bucket string) (*Client, error) {
	// Ensure URL doesn't have trailing slash
	baseURL := supabaseURL
	if len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &Client{
		client: client,
		bucket: bucket,
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet. Writes call it
// before uploading so the bucket is created lazily on first use.
func (s *Client) EnsureBucket() error {
	if _, err := s.client.GetBucket(s.bucket); err == nil {
		return nil
	}
	if _, err := s.client.CreateBucket(s.bucket, storage.BucketOptions{Public: false}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Upload stores data under the given object name and returns the object
// path. Object names are caller-supplied filenames and are not
// deduplicated; a duplicate name overwrites the previous object.
func (s *Client) Upload(objectName string, data []byte) (string, error) {
	if err := s.EnsureBucket(); err != nil {
		return "", err
	}

	contentType := "application/octet-stream"
	upsert := true
	_, err := s.client.UploadFile(s.bucket, objectName, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return objectName, nil
}

// Download fetches the object bytes stored under the given path.
func (s *Client) Download(objectPath string) ([]byte, error) {
	data, err := s.client.DownloadFile(s.bucket, objectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to download object: %w", err)
	}

	return data, nil
}
