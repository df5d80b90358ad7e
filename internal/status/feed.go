package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const DefaultFeedURL = "https://apps.runescape.com/runemetrics/quests"

var ErrUnknownPlayer = errors.New("no quests returned for player (unknown or private profile)")

type feed struct {
	Quests   []Quest `json:"quests"`
	LoggedIn string  `json:"loggedIn"`
}

// Decode reads a RuneMetrics quest feed document.
func Decode(r io.Reader) (*Statuses, error) {
	var f feed
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode quest feed: %w", err)
	}

	if len(f.Quests) == 0 {
		return nil, ErrUnknownPlayer
	}

	return New(f.Quests), nil
}

func FeedURL(base, username string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid feed url %q: %w", base, err)
	}

	q := u.Query()
	q.Set("user", username)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Fetch downloads and decodes the quest feed for username.
func Fetch(ctx context.Context, c *http.Client, base, username string) (*Statuses, error) {
	if username == "" {
		return nil, errors.New("missing username")
	}

	target, err := FeedURL(base, username)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch quest feed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch quest feed: HTTP %d", resp.StatusCode)
	}

	s, err := Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", username, err)
	}

	return s, nil
}
