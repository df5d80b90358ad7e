package util

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuman(t *testing.T) {
	assert.Equal(t, "512 B", Human(512))
	assert.Equal(t, "1.50 KB", Human(1536))
	assert.Equal(t, "2.00 MB", Human(2<<20))
	assert.Equal(t, "1.00 GB", Human(1<<30))
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "quests.dot")

	require.NoError(t, WriteFileAtomic(path, []byte("digraph {}")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "digraph {}", string(b))

	_, err = os.Stat(path + TempSuffix)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFileAtomicRemovesTempOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quests.dot")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "occupied"), 0755))

	err := WriteFileAtomic(path, []byte("digraph {}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write "+path)

	_, err = os.Stat(path + TempSuffix)
	assert.True(t, os.IsNotExist(err))
}

func TestCleanupUnfinished(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quests.dot")
	require.NoError(t, os.WriteFile(path+TempSuffix, []byte("partial"), 0644))

	CleanupUnfinished(path)

	_, err := os.Stat(path + TempSuffix)
	assert.True(t, os.IsNotExist(err))

	CleanupUnfinished("")
}

func TestHTTPClientHeaders(t *testing.T) {
	var gotUA, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotCookie = r.Header.Get("Cookie")
	}))
	defer srv.Close()

	cookieFile := filepath.Join(t.TempDir(), "cookies.txt")
	require.NoError(t, os.WriteFile(cookieFile, []byte("\n  b=2  \nignored=3\n"), 0644))

	c, err := NewHTTPClient(HTTPClientOptions{
		Timeout:    5 * time.Second,
		UserAgent:  "Magic Browser",
		Cookie:     "a=1",
		CookieFile: cookieFile,
	})
	require.NoError(t, err)

	resp, err := c.Get(srv.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "Magic Browser", gotUA)
	assert.Equal(t, "a=1; b=2", gotCookie)
}

func TestPickUserAgent(t *testing.T) {
	assert.Equal(t, DefaultUserAgent, PickUserAgent(""))
	assert.Equal(t, "x", PickUserAgent("x"))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 quest", Plural(1, "quest"))
	assert.Equal(t, "0 quests", Plural(0, "quest"))
	assert.Equal(t, "4 pages", Plural(4, "page"))
}
