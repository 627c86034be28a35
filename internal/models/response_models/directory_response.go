package response_models

type PublisherMinimal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type JournalistMinimal struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	PublisherName string `json:"publisher_name"`
}
