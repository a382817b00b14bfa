package assets

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client is the slice of the S3 API the store needs. *s3.Client satisfies
// it; tests supply a fake.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 streams assets from an S3 bucket. Useful when several deployments of
// the same dashboard suite share one published asset set.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := assets.NewS3(s3.NewFromConfig(cfg), "my-bucket", "dashboards/")
type S3 struct {
	client S3Client
	bucket string
	prefix string
}

// NewS3 creates an S3-backed store. Keys are prefix+name.
func NewS3(client S3Client, bucket, prefix string) *S3 {
	return &S3{client: client, bucket: bucket, prefix: prefix}
}

// Open implements Store.
func (s *S3) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	clean, ok := sanitize(name)
	if !ok {
		return nil, "", ErrNotFound
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + clean),
	})
	if err != nil {
		return nil, "", ErrNotFound
	}

	contentType := ""
	if out.ContentType != nil {
		contentType = *out.ContentType
	}
	return out.Body, contentType, nil
}
