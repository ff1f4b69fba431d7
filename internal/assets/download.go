// Package assets fetches auxiliary files over HTTP, thumbnails mostly.
package assets

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/FacundoAdorno/FLTube/internal/status"
)

// Fetch downloads url into dir/name. When the target already exists and
// overwrite is false the download is bypassed. Any HTTP or filesystem
// failure removes the partial file and reports a download failure.
func Fetch(client *http.Client, url, dir, name string, overwrite bool) status.Code {
	target := filepath.Join(dir, name)
	if !overwrite {
		if _, err := os.Stat(target); err == nil {
			return status.DownloadFileBypassed
		}
	}
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(url)
	if err != nil {
		return status.DownloadFileFailed
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return status.DownloadFileFailed
	}
	f, err := os.Create(target)
	if err != nil {
		return status.DownloadFileFailed
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(target)
		return status.DownloadFileFailed
	}
	if err := f.Close(); err != nil {
		os.Remove(target)
		return status.DownloadFileFailed
	}
	return status.OK
}
