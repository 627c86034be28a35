package response_models

// PagedResponse is the list envelope: {count, next, previous, results}.
type PagedResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}
