// Package objectstore publishes generated module files to an S3-compatible
// bucket so a hosted demo front-end can fetch them. Publishing is opt-in
// via the SAMPLEDATA_S3_* environment variables.
package objectstore

import (
	"bytes"
	"context"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/grilldesk/sampledata/env"
	"github.com/grilldesk/sampledata/errors"
)

const _HEALTH_CHECK_AFTER = time.Second * 2

type Config struct {
	Endpoint string
	Bucket   string
	AccessID string
	Secret   string
}

func FromEnv() Config {
	return Config{
		Endpoint: env.String("SAMPLEDATA_S3_ENDPOINT", ""),
		Bucket:   env.String("SAMPLEDATA_S3_BUCKET", ""),
		AccessID: env.String("SAMPLEDATA_S3_ACCESS_ID", ""),
		Secret:   env.String("SAMPLEDATA_S3_SECRET", ""),
	}
}

// Enabled reports whether publishing was configured at all. A local-only
// run never touches the network.
func (c Config) Enabled() bool {
	return c.Endpoint != "" && c.Bucket != ""
}

type Client struct {
	bucketName string

	c *minio.Client
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Region: "us-east-1",
		Creds:  credentials.NewStaticV4(cfg.AccessID, cfg.Secret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, errors.Wrap(err, "minio client cannot be created")
	}
	_, _ = client.HealthCheck(_HEALTH_CHECK_AFTER)

	if !client.IsOnline() {
		return nil, errors.Newf("minio endpoint %q is offline", cfg.Endpoint)
	}
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "minio bucket exists failed")
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, errors.Wrap(err, "cannot make new minio bucket")
		}
	}

	return &Client{c: client, bucketName: cfg.Bucket}, nil
}

// Publish uploads one rendered module under the given object name.
func (c *Client) Publish(ctx context.Context, name string, data []byte) error {
	_, err := c.c.PutObject(ctx, c.bucketName, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/javascript",
	})
	return errors.Wrap(err, "cannot upload %q", name)
}
