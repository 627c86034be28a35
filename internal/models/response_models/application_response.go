package response_models

type ApplicationResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username,omitempty"`
	AppliedRole string `json:"applied_role"`
	Motivation  string `json:"motivation"`
	Status      string `json:"status"`
	SubmittedAt int64  `json:"submitted_at"`
}
