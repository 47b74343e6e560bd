package trip

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/voyago/tripagent/internal/telemetry"
	"github.com/voyago/tripagent/tools/web_search/models"
)

// NoResultsSentinel replaces SearchResults when every query failed or came
// back empty.
const NoResultsSentinel = "No search results found."

// Searcher is the search gateway consumed by the research stage.
type Searcher interface {
	Search(ctx context.Context, q string, k int) (models.Response, error)
}

// ResearchStage gathers current travel information about the destination.
// It is fail-soft: a query that errors is logged and skipped, and a run where
// every query fails still produces the sentinel string rather than an error.
type ResearchStage struct {
	searcher   Searcher
	maxResults int
	logger     *log.Logger
	telemetry  *telemetry.Telemetry
}

func NewResearchStage(searcher Searcher, maxResults int, logger *log.Logger, tele *telemetry.Telemetry) *ResearchStage {
	return &ResearchStage{searcher: searcher, maxResults: maxResults, logger: logger, telemetry: tele}
}

// Run executes every query in order and writes the formatted results into
// st.SearchResults. It never fails.
func (s *ResearchStage) Run(ctx context.Context, st *State) {
	var all []models.Record
	for _, query := range BuildQueries(st.Request) {
		resp, err := s.searcher.Search(ctx, query, s.maxResults)
		if err != nil {
			s.logger.Printf("search error for %q: %v", query, err)
			s.telemetry.RecordSearchQuery(false)
			continue
		}
		s.telemetry.RecordSearchQuery(true)
		all = append(all, normalize(resp)...)
	}
	st.SearchResults = formatRecords(all)
}

// normalize maps either side of a gateway response to records. Structured
// results pass through; raw text is interpreted as a JSON encoding of one or
// more records, and failing that wrapped as a single sourceless record.
func normalize(resp models.Response) []models.Record {
	if resp.Records != nil {
		return resp.Records
	}
	raw := strings.TrimSpace(resp.Raw)
	if raw == "" {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err == nil {
		var out []models.Record
		for _, item := range items {
			if rec, ok := decodeRecord(item); ok {
				out = append(out, rec)
			}
		}
		return out
	}

	if rec, ok := decodeRecord([]byte(raw)); ok {
		return []models.Record{rec}
	}
	return []models.Record{{URL: "N/A", Content: resp.Raw}}
}

// decodeRecord accepts only JSON objects; numbers, nulls and other junk that
// providers occasionally mix into result arrays are discarded.
func decodeRecord(data []byte) (models.Record, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.Record{}, false
	}
	var rec models.Record
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return models.Record{}, false
	}
	return rec, true
}

func formatRecords(records []models.Record) string {
	blocks := make([]string, 0, len(records))
	for _, r := range records {
		url := r.URL
		if url == "" {
			url = "N/A"
		}
		blocks = append(blocks, fmt.Sprintf("Source: %s\n%s", url, r.Content))
	}
	joined := strings.Join(blocks, "\n\n")
	if joined == "" {
		return NoResultsSentinel
	}
	return joined
}
