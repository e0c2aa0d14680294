package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/poiesic/melodex/blob"
)

// Objects below this size are put directly; larger ones go through the
// multipart upload manager.
const largeObjectMinSize = 5 * 1024 * 1024

// Config carries the connection settings for an S3-compatible endpoint.
type Config struct {
	// "http://127.0.0.1:9000" for a local minio server; empty for AWS.
	HostEndpointUrl string
	// "us-east-1"
	Region    string
	Bucket    string
	Username  string
	Password  string
}

// Connect builds an S3 client for the configured endpoint.
func Connect(config Config) *awss3.Client {
	return awss3.NewFromConfig(aws.Config{Region: config.Region}, func(o *awss3.Options) {
		if config.HostEndpointUrl != "" {
			o.BaseEndpoint = aws.String(config.HostEndpointUrl)
			o.UsePathStyle = true
		}
		if config.Username != "" {
			o.Credentials = credentials.NewStaticCredentialsProvider(config.Username, config.Password, "")
		}
	})
}

// Store implements blob.Store on S3-compatible object storage.
type Store struct {
	client *awss3.Client
	bucket string
	logger *slog.Logger
}

var _ blob.Store = (*Store)(nil)

// NewStore creates an S3 blob store writing into the configured bucket.
func NewStore(config Config) (*Store, error) {
	if config.Bucket == "" {
		return nil, fmt.Errorf("bucket name required")
	}
	return &Store{
		client: Connect(config),
		bucket: config.Bucket,
		logger: slog.Default().With("component", "s3-blobstore"),
	}, nil
}

// Upload writes the payload under a freshly generated uuid key. Large
// payloads are uploaded in parts via the transfer manager; the identifier is
// returned only after the store acknowledges the write.
func (s *Store) Upload(ctx context.Context, name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", blob.ErrEmptyPayload
	}

	id := uuid.New().String()
	contentType := mime.TypeByExtension(filepath.Ext(name))

	input := &awss3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if len(data) >= largeObjectMinSize {
		uploader := manager.NewUploader(s.client, func(u *manager.Uploader) {
			u.PartSize = largeObjectMinSize
		})
		if _, err := uploader.Upload(ctx, input); err != nil {
			return "", err
		}
	} else {
		if _, err := s.client.PutObject(ctx, input); err != nil {
			return "", err
		}
	}

	s.logger.Debug("uploaded blob", "id", id, "name", name, "bytes", len(data))
	return id, nil
}

// Download streams the object identified by id into the sink.
func (s *Store) Download(ctx context.Context, id string, sink io.Writer) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", blob.ErrInvalidID, id)
	}

	resp, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return fmt.Errorf("%w: %s", blob.ErrNotFound, id)
		}
		return err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(sink, resp.Body); err != nil {
		return err
	}
	return nil
}
