package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config configures an S3Loader. Endpoint and PathStyle support
// S3-compatible storage (MinIO, R2, Spaces).
type S3Config struct {
	Bucket    string `env:"LOCALE_S3_BUCKET"`
	Region    string `env:"LOCALE_S3_REGION" envDefault:"us-east-1"`
	AccessKey string `env:"LOCALE_S3_ACCESS_KEY"`
	SecretKey string `env:"LOCALE_S3_SECRET_KEY"`
	Endpoint  string `env:"LOCALE_S3_ENDPOINT"`
	Prefix    string `env:"LOCALE_S3_PREFIX"`
	PathStyle bool   `env:"LOCALE_S3_PATH_STYLE" envDefault:"false"`
}

func (c S3Config) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}
	if c.AccessKey == "" || c.SecretKey == "" {
		return fmt.Errorf("%w: credentials are required", ErrInvalidConfig)
	}
	return nil
}

// S3Loader reads assets from S3-compatible object storage.
type S3Loader struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3 creates a read-only loader over an S3 bucket.
func NewS3(cfg S3Config) (*S3Loader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3Loader{
		client: s3.New(s3.Options{}, opts...),
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}, nil
}

// Fetch downloads the object at prefix/path.
func (l *S3Loader) Fetch(ctx context.Context, path string) ([]byte, error) {
	key := strings.TrimLeft(path, "/")
	if l.prefix != "" {
		key = l.prefix + "/" + key
	}

	output, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NoSuchKey
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("%w: s3 get %q: %v", ErrFetchFailed, key, err)
	}
	defer output.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %v", ErrFetchFailed, key, err)
	}
	return data, nil
}
