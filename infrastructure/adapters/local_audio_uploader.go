package adapters

import (
	"context"
	"errors"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/config"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// localAudioUploader writes audio into a directory served as static files
// and returns the site-relative address.
type localAudioUploader struct {
	logger outbound.LoggerPort
	config *config.LocalAudioConfig
}

func NewLocalAudioUploader(logger outbound.LoggerPort, cfg *config.LocalAudioConfig) (outbound.AudioUploaderPort, error) {
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("create audio directory: %w", err)
	}
	return &localAudioUploader{
		logger: logger,
		config: cfg,
	}, nil
}

func (u *localAudioUploader) Upload(_ context.Context, req outbound.UploadAudioRequest) (string, error) {
	filePath, err := u.filePath(req.FileName)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filePath, req.Content, 0o644); err != nil {
		u.logger.ErrorWithFields(err, "Failed to write audio file", map[string]interface{}{
			"path": filePath,
		})
		return "", err
	}
	return u.url(req.FileName), nil
}

func (u *localAudioUploader) Exists(_ context.Context, fileName string) (string, bool, error) {
	filePath, err := u.filePath(fileName)
	if err != nil {
		return "", false, err
	}
	_, err = os.Stat(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return u.url(fileName), true, nil
}

// filePath rejects names that would escape the audio directory.
func (u *localAudioUploader) filePath(fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) || strings.HasPrefix(fileName, ".") {
		return "", fmt.Errorf("invalid audio file name %q", fileName)
	}
	return filepath.Join(u.config.Directory, fileName), nil
}

func (u *localAudioUploader) url(fileName string) string {
	return path.Join(u.config.UrlPrefix, fileName)
}
