package wiki

import (
	"context"

	"github.com/brogergvhs/questgraph/internal/questreq"
)

// Page is one fetched and parsed quest page.
type Page struct {
	Title  string
	URL    string
	Cached bool
	Bytes  int64
	Result questreq.Result
}

type Source interface {
	Requirements(ctx context.Context, title string) (Page, error)
}

type PageCache interface {
	Get(ctx context.Context, url string) ([]byte, bool, error)
	Set(ctx context.Context, url string, body []byte) error
}
