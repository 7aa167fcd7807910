package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"photoproof-backend/internal/models"
)

// No content type is stored with a photo; reads assert PNG unconditionally,
// matching what callers of this API already expect.
const PhotoContentType = "image/png"

// PhotoStore is the slice of the entity repository the photo ingestion
// workflow needs.
type PhotoStore interface {
	CreatePhoto(ctx context.Context, albumID int32, s3Path string) (*models.Photo, error)
	GetPhotoByID(ctx context.Context, photoID int32) (*models.Photo, error)
	ListPhotosByAlbumID(ctx context.Context, albumID int32) ([]models.Photo, error)
}

// BlobStore stores and retrieves photo bytes under opaque object paths.
type BlobStore interface {
	Upload(objectName string, data []byte) (string, error)
	Download(objectPath string) ([]byte, error)
}

type PhotoService struct {
	store PhotoStore
	blobs BlobStore
}

func NewPhotoService(store PhotoStore, blobs BlobStore) *PhotoService {
	return &PhotoService{
		store: store,
		blobs: blobs,
	}
}

// UploadPhoto drains the multipart form part by part: the file part is
// uploaded to the blob store immediately under its filename, every other
// part is buffered as a text field. Fields are validated only after the
// whole form is consumed, so part order never matters.
func (s *PhotoService) UploadPhoto(ctx context.Context, form *multipart.Reader) (*models.Photo, error) {
	fields := make(map[string]string)
	var filePath string
	var fileUploaded bool

	for {
		part, err := form.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("failed to read multipart field: %v", err)}
		}

		if part.FormName() == "file" {
			filename := part.FileName()
			if filename == "" {
				filename = "uploaded_file"
			}

			data, err := io.ReadAll(part)
			if err != nil {
				return nil, &ValidationError{Message: fmt.Sprintf("failed to read file bytes: %v", err)}
			}

			filePath, err = s.blobs.Upload(filename, data)
			if err != nil {
				return nil, fmt.Errorf("failed to upload file to storage: %w", err)
			}
			fileUploaded = true
		} else {
			value, err := io.ReadAll(part)
			if err != nil {
				return nil, &ValidationError{Message: fmt.Sprintf("failed to read field text: %v", err)}
			}
			fields[part.FormName()] = string(value)
		}
	}

	albumID, err := strconv.ParseInt(fields["album_id"], 10, 32)
	if err != nil {
		return nil, &ValidationError{Message: "missing or invalid album_id"}
	}

	// A drained form without a file part is a caller bug, not user input.
	if !fileUploaded {
		return nil, fmt.Errorf("no file part in upload")
	}

	return s.store.CreatePhoto(ctx, int32(albumID), filePath)
}

// GetPhotoByID returns the stored photo bytes tagged with their content
// type.
func (s *PhotoService) GetPhotoByID(ctx context.Context, photoID int32) ([]byte, string, error) {
	photo, err := s.store.GetPhotoByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", &NotFoundError{Message: "photo not found"}
		}
		return nil, "", err
	}

	data, err := s.blobs.Download(photo.S3Path)
	if err != nil {
		return nil, "", err
	}

	return data, PhotoContentType, nil
}

func (s *PhotoService) GetPhotosByAlbumID(ctx context.Context, albumID int32) ([]models.Photo, error) {
	return s.store.ListPhotosByAlbumID(ctx, albumID)
}
