package storage

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var logger = loggo.GetLogger("storeops.storage")

const maxSignatureBytes = 2 << 20

// SignatureStore persists signature images and returns their URL.
type SignatureStore interface {
	Upload(ctx context.Context, userID uint, dataURL string) (string, error)
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

type MinioSignatureStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	now       func() time.Time
}

// NewMinioSignatureStore connects to MinIO and makes sure the bucket exists.
func NewMinioSignatureStore(ctx context.Context, cfg MinioConfig) (*MinioSignatureStore, error) {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !cfg.UseSSL,
		},
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Transport: transport,
	})
	if err != nil {
		return nil, errors.Annotate(err, "connecting to minio")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Annotatef(err, "checking bucket %s", cfg.Bucket)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Annotatef(err, "creating bucket %s", cfg.Bucket)
		}
		logger.Infof("bucket created: %s", cfg.Bucket)
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		publicURL = client.EndpointURL().String()
	}
	return &MinioSignatureStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
		now:       time.Now,
	}, nil
}

func (s *MinioSignatureStore) Upload(ctx context.Context, userID uint, dataURL string) (string, error) {
	data, mtype, err := DecodeImage(dataURL)
	if err != nil {
		return "", err
	}
	name := ObjectName(userID, s.now(), mtype.Extension())
	_, err = s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mtype.String(),
	})
	if err != nil {
		return "", errors.Annotatef(err, "uploading %s", name)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, name), nil
}

// ObjectName builds the key a signature is stored under.
func ObjectName(userID uint, at time.Time, ext string) string {
	return fmt.Sprintf("signatures/signature-%d-%d-%s%s", userID, at.UnixMilli(), uuid.NewString()[:8], ext)
}

// DecodeImage accepts a base64 payload, with or without a data URL prefix,
// and returns its bytes when they hold an image.
func DecodeImage(dataURL string) ([]byte, *mimetype.MIME, error) {
	raw := strings.TrimSpace(dataURL)
	if raw == "" {
		return nil, nil, errors.NotValidf("empty signature")
	}
	if strings.HasPrefix(raw, "data:") {
		idx := strings.Index(raw, ",")
		if idx < 0 {
			return nil, nil, errors.NotValidf("signature data url")
		}
		raw = raw[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, nil, errors.NewNotValid(err, "signature is not base64")
	}
	if len(data) > maxSignatureBytes {
		return nil, nil, errors.NotValidf("signature larger than %d bytes", maxSignatureBytes)
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, nil, errors.NotValidf("signature of type %s", mtype.String())
	}
	return data, mtype, nil
}
