package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nko_site_go/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore serves the sample documents offered for download
type DocumentStore interface {
	Open(ctx context.Context, key string) (io.ReadCloser, string, error) // Returns reader, content-type, error
	SignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
	// Remote reports whether downloads should redirect to SignedURL instead of streaming
	Remote() bool
}

// Documents is the global document store
var Documents DocumentStore

// InitializeDocumentStore picks R2 when it is configured and reachable, and the local
// documents directory otherwise
func InitializeDocumentStore(cfg *config.Config, log *zap.SugaredLogger) DocumentStore {
	if !cfg.R2Configured() {
		log.Infow("startup", "status", "document store ready", "backend", "local", "path", cfg.DocumentsDir)
		Documents = NewLocalDocumentStore(cfg.DocumentsDir)
		return Documents
	}

	r2, err := NewR2DocumentStore(cfg)
	if err != nil {
		log.Warnw("startup", "status", "R2 document store unavailable, falling back to local", "error", err)
		Documents = NewLocalDocumentStore(cfg.DocumentsDir)
		return Documents
	}

	// Test R2 connection (HeadBucket)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r2.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(r2.bucket)}); err != nil {
		log.Warnw("startup", "status", "R2 bucket check failed, falling back to local", "error", err)
		Documents = NewLocalDocumentStore(cfg.DocumentsDir)
		return Documents
	}

	log.Infow("startup", "status", "document store ready", "backend", "r2", "bucket", cfg.R2BucketName)
	Documents = r2
	return Documents
}

// R2DocumentStore reads documents from a Cloudflare R2 bucket
type R2DocumentStore struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	prefix    string
	publicURL string
}

// NewR2DocumentStore creates a store for the bucket named in cfg
func NewR2DocumentStore(cfg *config.Config) (*R2DocumentStore, error) {
	// R2 endpoint format: https://<account_id>.r2.cloudflarestorage.com
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)

	creds := credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion("auto"), // R2 uses "auto" region
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2DocumentStore{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.R2BucketName,
		prefix:    "documents/",
		publicURL: strings.TrimSuffix(cfg.R2PublicURL, "/"),
	}, nil
}

func (r *R2DocumentStore) Remote() bool { return true }

func (r *R2DocumentStore) objectKey(key string) string {
	return r.prefix + key
}

// Open streams a document from the bucket
func (r *R2DocumentStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	result, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.objectKey(key)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, "", ErrDocumentNotFound
		}
		return nil, "", fmt.Errorf("failed to get document from R2: %w", err)
	}

	contentType := contentTypeFor(key)
	if result.ContentType != nil {
		contentType = *result.ContentType
	}
	return result.Body, contentType, nil
}

// SignedURL returns a presigned download URL, or the public object URL when the
// bucket is served publicly
func (r *R2DocumentStore) SignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	if r.publicURL != "" {
		return r.publicURL + "/" + r.objectKey(key), nil
	}
	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(r.bucket),
		Key:                        aws.String(r.objectKey(key)),
		ResponseContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", filepath.Base(key))),
	}, s3.WithPresignExpires(expiration))
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return req.URL, nil
}

// LocalDocumentStore reads documents from a directory
type LocalDocumentStore struct {
	baseDir string
}

func NewLocalDocumentStore(baseDir string) *LocalDocumentStore {
	return &LocalDocumentStore{baseDir: baseDir}
}

func (l *LocalDocumentStore) Remote() bool { return false }

// Open opens a document file. Keys may not leave the base directory.
func (l *LocalDocumentStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	clean := filepath.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return nil, "", ErrDocumentNotFound
	}

	file, err := os.Open(filepath.Join(l.baseDir, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrDocumentNotFound
		}
		return nil, "", fmt.Errorf("failed to open document: %w", err)
	}
	return file, contentTypeFor(key), nil
}

// SignedURL for local storage is the static file path
func (l *LocalDocumentStore) SignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return "/" + filepath.ToSlash(filepath.Join(l.baseDir, key)), nil
}

func contentTypeFor(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/octet-stream"
}
