package response_models

type NewsletterListItem struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	JournalistName string `json:"journalist_name"`
	PublisherName  string `json:"publisher_name"`
	CreatedAt      int64  `json:"created_at"`
}

type NewsletterResponse struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Journalist JournalistMinimal `json:"journalist"`
	Publisher  PublisherMinimal  `json:"publisher"`
	CreatedAt  int64             `json:"created_at"`
	UpdatedAt  int64             `json:"updated_at"`
}
