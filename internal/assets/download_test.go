package assets

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/FacundoAdorno/FLTube/internal/status"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.jpg" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("jpeg-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()

	if got := Fetch(srv.Client(), srv.URL+"/thumb.jpg", dir, "thumb.jpg", false); got != status.OK {
		t.Fatalf("Fetch got=%v, want OK", got)
	}
	data, err := os.ReadFile(filepath.Join(dir, "thumb.jpg"))
	if err != nil || string(data) != "jpeg-bytes" {
		t.Fatalf("downloaded content got=%q err=%v", data, err)
	}

	// Existing file, no overwrite: bypassed.
	if got := Fetch(srv.Client(), srv.URL+"/thumb.jpg", dir, "thumb.jpg", false); got != status.DownloadFileBypassed {
		t.Fatalf("Fetch got=%v, want DownloadFileBypassed", got)
	}
	// Existing file, overwrite allowed.
	if got := Fetch(srv.Client(), srv.URL+"/thumb.jpg", dir, "thumb.jpg", true); got != status.OK {
		t.Fatalf("Fetch with overwrite got=%v, want OK", got)
	}

	if got := Fetch(srv.Client(), srv.URL+"/missing.jpg", dir, "missing.jpg", false); got != status.DownloadFileFailed {
		t.Fatalf("Fetch of a 404 got=%v, want DownloadFileFailed", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "missing.jpg")); !os.IsNotExist(err) {
		t.Fatalf("failed download must not leave a file behind")
	}
}
