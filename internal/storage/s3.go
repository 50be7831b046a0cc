package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
)

type Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewUploader(region, bucket, accessKey, secretKey string) *Uploader {
	client := s3.New(s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	})

	return &Uploader{
		client: client,
		bucket: bucket,
		region: region,
	}
}

// PetImageKey returns a fresh object key; keys are never derived from user
// input.
func PetImageKey() string {
	return "pets/" + uuid.NewString() + ".webp"
}

func (u *Uploader) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", httperr.ErrDependency("storage_unavailable", "Could not store the image. Try again.")
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
