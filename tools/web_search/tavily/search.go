package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/voyago/tripagent/tools/web_search/models"
)

const defaultURL = "https://api.tavily.com/search"

type Search struct {
	ApiKey string
	Client *http.Client
	// BaseURL overrides the Tavily endpoint, mainly for tests.
	BaseURL string
	// Depth controls Tavily's search_depth parameter (basic or advanced).
	Depth string
}

func (s Search) Search(ctx context.Context, q string, k int) (models.Response, error) {
	// https://docs.tavily.com/documentation/api-reference/endpoint/search
	depth := s.Depth
	if depth == "" {
		depth = "basic"
	}
	payload := map[string]any{
		"query":        q,
		"max_results":  k,
		"search_depth": depth,
	}
	body, _ := json.Marshal(payload)

	url := s.BaseURL
	if url == "" {
		url = defaultURL
	}
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return models.Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.ApiKey)

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return models.Response{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Response{}, fmt.Errorf("tavily http %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Response{}, err
	}

	var decoded struct {
		Results []struct {
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	// Tavily occasionally answers with a plain text body; hand that through
	// untouched and let the caller coerce it.
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return models.Response{Raw: string(raw)}, nil
	}

	out := make([]models.Record, 0, len(decoded.Results))
	for i, r := range decoded.Results {
		if i >= k {
			break
		}
		out = append(out, models.Record{URL: r.URL, Content: r.Content})
	}
	return models.Response{Records: out}, nil
}
