// Package filegetter loads API descriptions from anything go-getter
// understands: local paths, http(s) URLs, git, S3 and GCS.
package filegetter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
	getter "github.com/hashicorp/go-getter"
)

const errorLocalPath = "relative paths require a module with a pwd"

type Options struct {
	// Attempts is how many times a download is tried before giving up.
	Attempts uint
	// Delay is the base backoff between attempts.
	Delay time.Duration
}

func DefaultOptions() Options {
	return Options{Attempts: 3, Delay: 500 * time.Millisecond}
}

// Get downloads src and returns its content.
func Get(ctx context.Context, src string, opts ...Options) ([]byte, error) {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	basePath, err := os.MkdirTemp("", "oas2ts-")
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	defer os.RemoveAll(basePath)

	dst := filepath.Join(basePath, "document")
	err = retry.Do(
		func() error {
			err := getter.GetFile(dst, src, getter.WithContext(ctx))
			if err != nil && err.Error() == errorLocalPath {
				abs, aerr := filepath.Abs(src)
				if aerr != nil {
					return retry.Unrecoverable(fmt.Errorf("failed to get absolute path: %w", aerr))
				}
				src = abs
				err = getter.GetFile(dst, src, getter.WithContext(ctx))
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(o.Attempts),
		retry.Delay(o.Delay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}

	contents, err := os.ReadFile(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return contents, nil
}
