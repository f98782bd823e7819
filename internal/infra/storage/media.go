package storage

import (
	"log/slog"
	"strings"

	"pitch-booking/internal/pkg/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// MediaResolver maps stored media paths to public URLs. With Cloudinary
// credentials the path is treated as a public id, otherwise it is joined to
// the configured base URL. Absolute URLs pass through.
type MediaResolver struct {
	cld     *cloudinary.Cloudinary
	baseURL string
	logger  *slog.Logger
}

func NewMediaResolver(cfg config.StorageConfig, logger *slog.Logger) (*MediaResolver, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &MediaResolver{baseURL: cfg.MediaBaseURL, logger: logger}
	if cfg.CloudinaryCloudName == "" {
		return r, nil
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	r.cld = cld
	return r, nil
}

func (r *MediaResolver) URL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if r.cld != nil {
		u, err := r.cloudinaryURL(path)
		if err == nil {
			return u
		}
		r.logger.Warn("failed to build cloudinary url", "path", path, "error", err)
	}
	return r.baseURLFor(path)
}

func (r *MediaResolver) cloudinaryURL(path string) (string, error) {
	img, err := r.cld.Image(path)
	if err != nil {
		return "", err
	}
	return img.String()
}

func (r *MediaResolver) baseURLFor(path string) string {
	if r.baseURL == "" {
		return path
	}
	return strings.TrimSuffix(r.baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}
