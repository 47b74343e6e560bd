package models

// Record is one search hit: where it came from and what it said.
type Record struct {
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Response is what a search provider hands back. Exactly one side is set:
// Records when the provider body decoded into structured hits, Raw when it
// came back as text the caller has to interpret itself.
type Response struct {
	Records []Record
	Raw     string
}
