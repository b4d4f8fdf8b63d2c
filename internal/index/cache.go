package index

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/coastline-tools/zigup/internal/messages"
	"github.com/coastline-tools/zigup/internal/store"
)

// staleAfter is how long a cached index file is trusted, measured from its
// modification time.
const staleAfter = 24 * time.Hour

// missingAge is the age assigned to a cache file that does not exist yet.
const missingAge = 7 * 24 * time.Hour

// Family identifies one release index: its storage name and remote URL.
type Family struct {
	Name string
	URL  string
}

// Zig and ZLS are the two index families zigup consults.
var (
	Zig = Family{Name: store.FamilyZig, URL: "https://ziglang.org/download/index.json"}
	ZLS = Family{Name: store.FamilyZLS, URL: "https://builds.zigtools.org/index.json"}
)

// Client loads and refreshes cached release indexes. Construct one per
// invocation and pass it to the components that need it.
type Client struct {
	HTTP  *http.Client
	Store store.Store
	Now   func() time.Time

	loaded map[string]*Index
}

// NewClient returns a client with a 30-second request timeout.
func NewClient(st store.Store) *Client {
	return &Client{
		HTTP:   &http.Client{Timeout: 30 * time.Second},
		Store:  st,
		Now:    time.Now,
		loaded: make(map[string]*Index),
	}
}

// LoadOrRefresh returns the family's index, re-downloading the cache file
// first when it is older than 24 hours or missing. The parsed document is
// memoized for the rest of the invocation.
func (c *Client) LoadOrRefresh(fam Family) (*Index, error) {
	if ix, ok := c.loaded[fam.Name]; ok {
		return ix, nil
	}

	path := c.Store.IndexPath(fam.Name)
	age, err := c.cacheAge(fam, path)
	if err != nil {
		return nil, err
	}
	if age > staleAfter {
		if err := c.Refresh(fam); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.IndexReadCacheFmt, fam.Name, path, err)
	}
	ix, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf(messages.IndexParseFmt, fam.Name, err)
	}
	c.loaded[fam.Name] = ix
	return ix, nil
}

// Refresh downloads the family's index and replaces the cache file. The
// write is all-or-nothing: the body is staged in a temporary file and
// renamed over the cache, so a failed download never clobbers a working one.
func (c *Client) Refresh(fam Family) error {
	resp, err := c.HTTP.Get(fam.URL)
	if err != nil {
		return fmt.Errorf(messages.IndexFetchFailedFmt, fam.Name, fam.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(messages.IndexUnexpectedStatusFmt, fam.Name, fam.URL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf(messages.IndexReadBodyFmt, fam.Name, err)
	}

	path := c.Store.IndexPath(fam.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf(messages.IndexCreateCacheDirFmt, fam.Name, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.IndexWriteCacheFmt, fam.Name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf(messages.IndexWriteCacheFmt, fam.Name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf(messages.IndexWriteCacheFmt, fam.Name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf(messages.IndexCommitCacheFmt, fam.Name, err)
	}
	delete(c.loaded, fam.Name)
	return nil
}

// cacheAge returns how old the cache file is. A missing file counts as a
// week old rather than an error.
func (c *Client) cacheAge(fam Family, path string) (time.Duration, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return missingAge, nil
		}
		return 0, fmt.Errorf(messages.IndexStatCacheFmt, fam.Name, path, err)
	}
	return c.Now().Sub(info.ModTime()), nil
}
