package response_models

type EditorDashboard struct {
	PublisherName    string            `json:"publisher_name"`
	PendingArticles  []ArticleListItem `json:"pending_articles"`
	ApprovedArticles []ArticleListItem `json:"approved_articles"`
	RejectedArticles []ArticleListItem `json:"rejected_articles"`
	TotalCount       int               `json:"total_count"`
	PendingCount     int               `json:"pending_count"`
	ApprovedCount    int               `json:"approved_count"`
	RejectedCount    int               `json:"rejected_count"`
}

type JournalistDashboard struct {
	PendingArticles  []ArticleListItem    `json:"pending_articles"`
	ApprovedArticles []ArticleListItem    `json:"approved_articles"`
	RejectedArticles []ArticleListItem    `json:"rejected_articles"`
	Newsletters      []NewsletterListItem `json:"newsletters"`
	TotalCount       int                  `json:"total_count"`
	NewsletterCount  int                  `json:"newsletter_count"`
}

type EditorItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type JournalistStats struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Username         string `json:"username"`
	ArticleCount     int64  `json:"article_count"`
	PendingArticles  int64  `json:"pending_article_count"`
	ApprovedArticles int64  `json:"approved_article_count"`
	RejectedArticles int64  `json:"rejected_article_count"`
	NewsletterCount  int64  `json:"newsletter_count"`
	SubscriberCount  int64  `json:"subscriber_count"`
}

type PublisherDashboard struct {
	PublisherName            string            `json:"publisher_name"`
	Editors                  []EditorItem      `json:"editors"`
	Journalists              []JournalistStats `json:"journalists"`
	PublisherSubscriberCount int64             `json:"publisher_subscriber_count"`
	TotalArticles            int64             `json:"total_articles_count"`
	TotalNewsletters         int64             `json:"total_newsletters_count"`
	PendingArticles          int64             `json:"total_pending_articles"`
	ApprovedArticles         int64             `json:"total_approved_articles"`
	RejectedArticles         int64             `json:"total_rejected_articles"`
	EditorCount              int               `json:"editors_count"`
	JournalistCount          int               `json:"journalists_count"`
}
