package web_search

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/voyago/tripagent/tools/web_search/brave"
	"github.com/voyago/tripagent/tools/web_search/models"
	"github.com/voyago/tripagent/tools/web_search/serper"
	"github.com/voyago/tripagent/tools/web_search/tavily"
)

// WebSearcher runs one web search query and returns up to k results.
type WebSearcher interface {
	Search(ctx context.Context, q string, k int) (models.Response, error)
}

type Provider string

const (
	TavilyProvider Provider = "tavily"
	BraveProvider  Provider = "brave"
	SerperProvider Provider = "serper"
)

var ErrUnsupportedProvider = errors.New("unsupported search provider")

func NewWebSearcher(provider Provider, apiKey string, timeout time.Duration) (WebSearcher, error) {
	client := &http.Client{Timeout: timeout}
	switch provider {
	case TavilyProvider:
		return tavily.Search{ApiKey: apiKey, Client: client}, nil
	case BraveProvider:
		return brave.Search{ApiKey: apiKey, Client: client}, nil
	case SerperProvider:
		return serper.Search{ApiKey: apiKey, Client: client}, nil
	default:
		return nil, ErrUnsupportedProvider
	}
}
