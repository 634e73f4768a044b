package contribute

import (
	"bytes"
	"context"
	"path"
	"strings"

	"go.uber.org/zap"
)

// FetchCover downloads src and stores it under key. Failures are logged and
// reported as skipped.
func (s *Service) FetchCover(ctx context.Context, src, key string) CoverResult {
	if s.store == nil {
		return skipped("object storage not configured")
	}
	if src == "" {
		return skipped("no image")
	}

	data, contentType, err := s.source.Download(ctx, src)
	if err != nil {
		s.log.Warn("cover download failed", zap.String("src", src), zap.Error(err))
		return skipped("download failed")
	}

	url, err := s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		s.log.Warn("cover upload failed", zap.String("key", key), zap.Error(err))
		return skipped("upload failed")
	}
	return CoverResult{Status: CoverStored, URL: url}
}

func imageExt(src string) string {
	ext := strings.ToLower(path.Ext(src))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return ".jpg"
	}
}
