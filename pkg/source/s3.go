package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3Source re-opens an s3://bucket/key object with a fresh GetObject call
// on every Open, so the two-pass pipeline gets two independent streams
// without buffering a multi-gigabyte graph in memory (spec §4, §6).
type s3Source struct {
	uri    string
	bucket string
	key    string
	client *s3.Client
}

func newS3Source(uri string) (*s3Source, error) {
	rest := strings.TrimPrefix(uri, "s3://")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("source: malformed s3 uri %q, want s3://bucket/key", uri)
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if ak, sk := os.Getenv("PANACUS_S3_ACCESS_KEY_ID"), os.Getenv("PANACUS_S3_SECRET_ACCESS_KEY"); ak != "" && sk != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(ak, sk, os.Getenv("PANACUS_S3_SESSION_TOKEN"))))
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("source: loading AWS config: %w", err)
	}
	return &s3Source{
		uri:    uri,
		bucket: parts[0],
		key:    parts[1],
		client: s3.NewFromConfig(cfg),
	}, nil
}

func (s *s3Source) Open() (io.ReadCloser, error) {
	out, err := s.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("source: s3 GetObject %s: %w", s.uri, err)
	}
	return out.Body, nil
}

func (s *s3Source) String() string { return s.uri }
