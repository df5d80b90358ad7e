package wiki

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/brogergvhs/questgraph/internal/questreq"
)

const DefaultBaseURL = "https://runescape.wiki"

var ErrPageNotFound = errors.New("wiki page not found")

type Client struct {
	client *http.Client
	base   string
	class  string
	cache  PageCache
	log    interface {
		Debugf(string, ...any)
	}
}

// NewClient returns a Source backed by the wiki at base. cache may be nil.
func NewClient(c *http.Client, base, class string, cache PageCache, log interface{ Debugf(string, ...any) }) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if class == "" {
		class = questreq.DefaultTableClass
	}

	return &Client{
		client: c,
		base:   strings.TrimRight(base, "/"),
		class:  class,
		cache:  cache,
		log:    log,
	}
}

// PageURL builds the article URL for a quest title, following redirects
// for renamed quests.
func PageURL(base, title string) string {
	name := strings.Join(strings.Fields(title), "_")
	return strings.TrimRight(base, "/") + "/w/" + url.PathEscape(name) + "?redirect=yes"
}

func (c *Client) debugf(format string, args ...any) {
	if c.log != nil {
		c.log.Debugf(format, args...)
	}
}

func (c *Client) fetchBody(ctx context.Context, target string) ([]byte, bool, error) {
	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, target)
		if err != nil {
			c.debugf("cache: %v\n", err)
		} else if ok {
			return body, true, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, ErrPageNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, false, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("read body: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, target, body); err != nil {
			c.debugf("cache: %v\n", err)
		}
	}

	return body, false, nil
}

// Requirements fetches the page for title and parses its requirement table.
// A page without the table is returned with Result.Found == false.
func (c *Client) Requirements(ctx context.Context, title string) (Page, error) {
	target := PageURL(c.base, title)
	page := Page{Title: title, URL: target}

	body, cached, err := c.fetchBody(ctx, target)
	if err != nil {
		return page, fmt.Errorf("%s: %w", title, err)
	}
	page.Cached = cached
	page.Bytes = int64(len(body))

	res, err := questreq.Parse(bytes.NewReader(body), c.class)
	if err != nil {
		return page, fmt.Errorf("%s: %w", title, err)
	}
	page.Result = res

	c.debugf("%s: table=%t items=%d cached=%t\n", title, res.Found, res.Tree.Len(), cached)
	return page, nil
}
