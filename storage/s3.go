// Package storage uploads base64-encoded media payloads to S3 under
// per-entity key prefixes.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pixeldesignindia/organic-api/apperror"
	"github.com/pixeldesignindia/organic-api/configs"
	"github.com/pixeldesignindia/organic-api/utils"
)

const (
	PrefixUserImage    = "user-image/"
	PrefixProductImage = "product-image/"
	PrefixProductVideo = "product-video/"
	PrefixBannerImage  = "banner-image/"
)

// ObjectPutter is the slice of the S3 client the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Uploader struct {
	client ObjectPutter
	bucket string
	region string
}

// NewUploader loads the default AWS config for the configured region.
func NewUploader(ctx context.Context, cfg configs.Config) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		region: cfg.AWSRegion,
	}, nil
}

// NewUploaderWithClient wires an explicit client, used by tests.
func NewUploaderWithClient(client ObjectPutter, bucket, region string) *Uploader {
	return &Uploader{client: client, bucket: bucket, region: region}
}

// UploadBase64 decodes a base64 payload (with or without a data: URL
// header) and stores it under prefix, returning the public object URL.
func (u *Uploader) UploadBase64(ctx context.Context, prefix, payload, extension string) (string, error) {
	if u.bucket == "" {
		return "", apperror.Internal("object storage is not configured")
	}

	raw := payload
	contentType := "application/octet-stream"
	if strings.HasPrefix(payload, "data:") {
		parts := strings.SplitN(payload, ",", 2)
		if len(parts) != 2 {
			return "", apperror.BadRequest("Invalid base64 payload")
		}
		contentType = strings.TrimSuffix(strings.TrimPrefix(parts[0], "data:"), ";base64")
		raw = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", apperror.BadRequest("Invalid base64 payload")
	}

	key := prefix + utils.UniqueID()
	if extension != "" {
		key += "." + strings.TrimPrefix(extension, ".")
	}

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", apperror.Upstream("Failed to upload file to object storage")
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
