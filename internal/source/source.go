package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/gctl/pkg/shared/config"
	"github.com/scan-io-git/gctl/pkg/shared/errors"
	"github.com/scan-io-git/gctl/pkg/shared/files"
)

const s3Scheme = "s3://"

// Reader loads a findings document by path.
type Reader interface {
	Read(ctx context.Context, path string) ([]byte, error)
}

// Source reads local files and s3://bucket/key objects.
// Every failure is reported as an *errors.IoError.
type Source struct {
	logger    hclog.Logger
	s3Client  s3iface.S3API
	newClient func() (s3iface.S3API, error)
}

// New returns a Source; the S3 client is only created when an s3:// path is read.
func New(cfg *config.Config, logger hclog.Logger) *Source {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	var s3cfg config.S3
	if cfg != nil {
		s3cfg = cfg.S3
	}
	return &Source{
		logger:    logger,
		newClient: func() (s3iface.S3API, error) { return newS3Client(s3cfg) },
	}
}

// NewWithS3Client returns a Source using the given S3 client.
func NewWithS3Client(client s3iface.S3API, logger hclog.Logger) *Source {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Source{logger: logger, s3Client: client}
}

func (s *Source) Read(ctx context.Context, path string) ([]byte, error) {
	if bucket, key, ok := ParseS3URI(path); ok {
		data, err := s.readS3(ctx, bucket, key)
		if err != nil {
			return nil, errors.NewIoError(path, err)
		}
		return data, nil
	}

	data, err := files.ReadFile(path)
	if err != nil {
		return nil, errors.NewIoError(path, err)
	}
	return data, nil
}

func (s *Source) readS3(ctx context.Context, bucket, key string) ([]byte, error) {
	if s.s3Client == nil {
		if s.newClient == nil {
			return nil, fmt.Errorf("s3 client is not configured")
		}
		client, err := s.newClient()
		if err != nil {
			return nil, fmt.Errorf("unable to create s3 client: %w", err)
		}
		s.s3Client = client
	}

	s.logger.Debug("fetching findings document from s3", "bucket", bucket, "key", key)
	out, err := s.s3Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			switch aerr.Code() {
			case s3.ErrCodeNoSuchKey:
				return nil, fmt.Errorf("object does not exist: %w", aerr)
			case s3.ErrCodeNoSuchBucket:
				return nil, fmt.Errorf("bucket %q does not exist: %w", bucket, aerr)
			}
		}
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// ParseS3URI splits s3://bucket/key into its parts.
func ParseS3URI(path string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(path, s3Scheme) {
		return "", "", false
	}
	rest := strings.TrimPrefix(path, s3Scheme)
	idx := strings.Index(rest, "/")
	if idx <= 0 || idx == len(rest)-1 {
		return "", "", false
	}
	return rest[:idx], rest[idx+1:], true
}

func newS3Client(cfg config.S3) (s3iface.S3API, error) {
	awsCfg := aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Profile:           cfg.Profile,
		Config:            awsCfg,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, err
	}
	return s3.New(sess), nil
}
