package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// Download fetches a file attachment by URL and writes it into dir, which
// is the user-visible documents directory on device. The file name is taken
// from the URL path. Returns the path of the written file.
//
// Downloaded files are ephemeral share copies; nothing tracks or cleans
// them up beyond the platform's own documents handling.
func (c *Client) Download(ctx context.Context, fileURL, dir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	name := path.Base(req.URL.Path)
	if name == "/" || name == "." {
		name = "download"
	}

	target := filepath.Join(dir, name)
	file, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		os.Remove(target)
		return "", err
	}

	return target, nil
}
