package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"gorm.io/gorm"

	"venuescout-api/config"
	"venuescout-api/models"
)

// PhotoService stores venue photos in an S3-compatible bucket and keeps
// their metadata rows in the database.
type PhotoService struct {
	db        *gorm.DB
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewPhotoService(db *gorm.DB, cfg *config.Config) (*PhotoService, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &PhotoService{
		db:        db,
		client:    client,
		bucket:    cfg.MinioBucket,
		publicURL: strings.TrimSuffix(cfg.PublicMediaURL, "/"),
	}, nil
}

// EnsureBucket creates the photo bucket if it does not exist yet.
func (ps *PhotoService) EnsureBucket(ctx context.Context) error {
	exists, err := ps.client.BucketExists(ctx, ps.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := ps.client.MakeBucket(ctx, ps.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// UploadPhoto stores the image and records it against the venue. If the
// database write fails the stored object is removed again.
func (ps *PhotoService) UploadPhoto(ctx context.Context, venueID, filename, contentType string, r io.Reader, size int64, caption *string, displayOrder int) (*models.Photo, error) {
	objectName := fmt.Sprintf("%s/%s%s", venueID, uuid.New().String(), path.Ext(filename))

	_, err := ps.client.PutObject(ctx, ps.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	photo := &models.Photo{
		ID:           uuid.New().String(),
		VenueID:      venueID,
		URL:          ps.publicURL + "/" + objectName,
		Caption:      caption,
		DisplayOrder: displayOrder,
	}

	if err := ps.db.Create(photo).Error; err != nil {
		// Best effort: don't leave an orphaned object behind
		_ = ps.client.RemoveObject(ctx, ps.bucket, objectName, minio.RemoveObjectOptions{})
		return nil, fmt.Errorf("failed to save photo record: %w", err)
	}

	return photo, nil
}

// DeletePhoto removes both the stored object and the database row.
func (ps *PhotoService) DeletePhoto(ctx context.Context, photo *models.Photo) error {
	if objectName, ok := strings.CutPrefix(photo.URL, ps.publicURL+"/"); ok {
		if err := ps.client.RemoveObject(ctx, ps.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove stored photo: %w", err)
		}
	}

	if err := ps.db.Delete(photo).Error; err != nil {
		return fmt.Errorf("failed to delete photo record: %w", err)
	}

	return nil
}
