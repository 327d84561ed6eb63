// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides an S3-compatible object storage client for
// uploading design screenshots. It wraps the AWS SDK v2 and is configured
// for path-style access (required by CEPH/Hetzner/minio-style stores).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"designforge/internal/models"
)

// Bucket is the fixed bucket every screenshot lands in.
const Bucket = "designs-bucket"

// keyPrefix namespaces screenshot objects inside the bucket.
const keyPrefix = "designs/"

// Client wraps an S3 client for screenshot uploads to the designs bucket.
type Client struct {
	s3        *s3.Client
	endpoint  string
	publicURL string // optional CDN/direct URL for public files
}

// New creates an S3 storage client with path-style addressing and static
// credentials. endpoint and secretKey must be non-empty.
func New(endpoint, region, accessKey, secretKey, publicURL string) (*Client, error) {
	if endpoint == "" || secretKey == "" {
		return nil, fmt.Errorf("storage: endpoint and credentials are required")
	}

	// Strip trailing slash from endpoint for consistent URL building.
	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        s3Client,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// UploadPNG stores a screenshot under the given key with public-read ACL
// and returns its public URL.
func (c *Client) UploadPNG(ctx context.Context, key string, png []byte) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(png),
		ContentLength: aws.Int64(int64(len(png))),
		ContentType:   aws.String("image/png"),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s/%s: %w", Bucket, key, err)
	}
	return c.FileURL(key), nil
}

// FileURL returns the public URL for an object in the designs bucket.
// Uses the configured public URL if set, otherwise builds a path-style URL.
func (c *Client) FileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + Bucket + "/" + key
}

// ObjectKey builds the object key for one screenshot:
// designs/YYYYMMDD_HHMMSS_{category_snake}_{index}.png, where index is
// the 0-based count of designs produced so far by this process. The
// timestamp plus index make keys unique per process without locking.
func ObjectKey(category models.Category, index int, now time.Time) string {
	return keyPrefix + now.Format("20060102_150405") +
		"_" + category.Snake() +
		"_" + strconv.Itoa(index) + ".png"
}
