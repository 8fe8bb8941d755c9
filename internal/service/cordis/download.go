package cordis

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tangiwai/cordis-summary/internal/pkg/logger"
)

// downloadAndExtract fetches a dump archive and unpacks its files into dir,
// junking any directory structure inside the archive as the source layouts
// vary between programmes.
func (s *Service) downloadAndExtract(ctx context.Context, url, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}

	archivePath := dir + ".zip"
	if err := s.downloadFile(ctx, url, archivePath); err != nil {
		return fmt.Errorf("downloadFile: %w", err)
	}

	if err := extractWithoutPaths(ctx, archivePath, dir); err != nil {
		return fmt.Errorf("extractWithoutPaths: %w", err)
	}

	return nil
}

func (s *Service) downloadFile(ctx context.Context, url, path string) (err error) {
	var resp *http.Response
	err = backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			var httpErr error
			resp, httpErr = s.client.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				resp.Body.Close()
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 5),
			ctx,
		),
	)
	if err != nil {
		return err
	}

	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", closeErr)
		}
	}()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	written, err := io.Copy(file, resp.Body)
	if err != nil {
		return fmt.Errorf("io.Copy: %w", err)
	}
	logger.Infof(ctx, "downloaded %s (%d bytes)", filepath.Base(path), written)

	return nil
}

func extractWithoutPaths(ctx context.Context, archivePath, dir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("zip.OpenReader: %w", err)
	}
	defer reader.Close()

	for _, f := range reader.File {
		if f.FileInfo().IsDir() {
			continue
		}

		if err := extractFile(f, filepath.Join(dir, filepath.Base(f.Name))); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}

	logger.Infof(ctx, "extracted %s to %s", archivePath, dir)
	return nil
}

func extractFile(f *zip.File, target string) (err error) {
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := dst.Close()
		if closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = io.Copy(dst, src)
	return err
}
