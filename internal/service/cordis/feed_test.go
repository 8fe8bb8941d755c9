package cordis

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <item><pubDate>Mon, 02 Jan 2023 10:00:00 +0100</pubDate></item>
    <item><pubDate>Tue, 04 Jul 2023 08:30:00 +0200</pubDate></item>
  </channel>
</rss>`

func TestCheckFeedDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	svc := NewService(nil, nil, t.TempDir())
	got, err := svc.checkFeedDate(context.Background(), srv.URL)
	require.NoError(t, err)

	want := time.Date(2023, 7, 4, 8, 30, 0, 0, time.FixedZone("", 2*60*60))
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestCheckFeedDateGMTVariant(t *testing.T) {
	feed := `<rss><channel><item><pubDate>Tue, 04 Jul 2023 08:30:00 GMT</pubDate></item></channel></rss>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	svc := NewService(nil, nil, t.TempDir())
	got, err := svc.checkFeedDate(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 2023, got.Year())
	assert.Equal(t, time.July, got.Month())
}

func TestCheckFeedDateEmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<rss><channel></channel></rss>`))
	}))
	defer srv.Close()

	svc := NewService(nil, nil, t.TempDir())
	_, err := svc.checkFeedDate(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestDownloadAndExtractJunksPaths(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("nested/deeply/organization.xlsx")
	require.NoError(t, err)
	_, err = w.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "dump")
	svc := NewService(nil, nil, t.TempDir())
	require.NoError(t, svc.downloadAndExtract(context.Background(), srv.URL, dir))

	// The nested path inside the archive is junked.
	content, err := os.ReadFile(filepath.Join(dir, "organization.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}
