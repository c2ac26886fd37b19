package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/Pengu1Nus/recipe-api/config"
	"github.com/Pengu1Nus/recipe-api/internal/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageService stores recipe images in S3.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadRecipeImage validates that the payload is an image, stores it
// under uploads/recipe/<uuid>.<ext> and returns the public URL. Invalid
// content is a validation error, not a crash; S3 failures are returned
// to the caller unretried.
func (s *ImageService) UploadRecipeImage(ctx context.Context, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", &ValidationError{Field: "image", Message: "file is empty"}
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", &ValidationError{Field: "image", Message: "file is not a valid image"}
	}

	key := models.RecipeImagePath(filename)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[ImageService] Uploaded recipe image to %s", url)
	return url, nil
}
