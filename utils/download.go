package utils

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DownloadImage fetches the heightmap image at url into a temporary file and
// returns it rewound to the start. The caller removes the file.
func DownloadImage(url string) (*os.File, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	res, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("unable to download image file from URI %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download image file from URI %s: status %s", url, res.Status)
	}
	if ct := res.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("URI %s is not an image: content type %q", url, ct)
	}

	tmpfile, err := os.CreateTemp("", "contour-heightmap-*")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary file: %w", err)
	}
	if _, err = io.Copy(tmpfile, res.Body); err == nil {
		_, err = tmpfile.Seek(0, io.SeekStart)
	}
	if err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, fmt.Errorf("unable to copy the source URI into the temporary file: %w", err)
	}
	return tmpfile, nil
}
