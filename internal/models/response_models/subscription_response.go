package response_models

type JournalistSubscriptionItem struct {
	JournalistID   string `json:"journalist_id"`
	JournalistName string `json:"journalist_name"`
	PublisherName  string `json:"publisher_name"`
	SubscribedAt   int64  `json:"subscribed_at"`
}

type PublisherSubscriptionItem struct {
	PublisherID   string `json:"publisher_id"`
	PublisherName string `json:"publisher_name"`
	SubscribedAt  int64  `json:"subscribed_at"`
}

// SubscriptionOverview is the reader's subscription page: active
// subscriptions plus the most recent articles those subscriptions unlock.
type SubscriptionOverview struct {
	JournalistSubscriptions []JournalistSubscriptionItem `json:"journalist_subscriptions"`
	PublisherSubscriptions  []PublisherSubscriptionItem  `json:"publisher_subscriptions"`
	RecentArticles          []ArticleListItem            `json:"recent_articles"`
	TotalSubscriptions      int                          `json:"total_subscriptions"`
}
