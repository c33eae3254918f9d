package storage

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"go.uber.org/zap"
)

type OSSConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	PublicBaseURL   string
	Prefix          string
}

// ObjectPutter is the slice of *oss.Bucket the store needs.
type ObjectPutter interface {
	PutObject(objectKey string, reader io.Reader, options ...oss.Option) error
}

//go:generate mockgen -source=oss.go -destination=mock/oss_mock.go -package=mock
type ImageUploader interface {
	// UploadImage re-encodes data to WebP under dir and returns its public URL.
	UploadImage(ctx context.Context, dir string, data []byte, mime string) (string, error)
}

type ImageStore struct {
	bucket     ObjectPutter
	publicBase string
	prefix     string
	webp       WebPOptions
	now        func() time.Time
	logger     *zap.Logger
}

func NewOSS(cfg OSSConfig, logger ...*zap.Logger) (*ImageStore, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("oss bucket %q: %w", cfg.Bucket, err)
	}

	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		end := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
		base = fmt.Sprintf("https://%s.%s", cfg.Bucket, end)
	}
	return NewImageStore(bkt, base, cfg.Prefix, logger...), nil
}

func NewImageStore(bucket ObjectPutter, publicBase, prefix string, logger ...*zap.Logger) *ImageStore {
	l := zap.L().Named("storage.oss")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.oss")
	}
	return &ImageStore{
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
		prefix:     strings.Trim(prefix, "/"),
		webp:       DefaultWebPOptions,
		now:        time.Now,
		logger:     l,
	}
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func (s *ImageStore) objectKey(dir string) string {
	parts := make([]string, 0, 3)
	if s.prefix != "" {
		parts = append(parts, s.prefix)
	}
	if dir = strings.Trim(dir, "/"); dir != "" {
		parts = append(parts, dir)
	}
	name := fmt.Sprintf("%s_%s.webp", s.now().UTC().Format("20060102_150405"), randHex(3))
	return strings.Join(append(parts, name), "/")
}

func (s *ImageStore) UploadImage(ctx context.Context, dir string, data []byte, mime string) (string, error) {
	encoded, err := ToWebP(data, mime, s.webp)
	if err != nil {
		return "", err
	}

	key := s.objectKey(dir)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(MimeWebP),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.bucket.PutObject(key, bytes.NewReader(encoded), opts...); err != nil {
		s.logger.Error("oss put failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("oss put %s: %w", key, err)
	}

	s.logger.Info("oss put success", zap.String("key", key), zap.Int("bytes", len(encoded)))
	return s.publicBase + "/" + key, nil
}
