package request_models

type RoleApplicationRequest struct {
	AppliedRole string `json:"applied_role" binding:"required,oneof=journalist editor publisher"`
	Motivation  string `json:"motivation" binding:"required"`
}

// ApplicationDecisionRequest optionally names the publisher to attach the new
// journalist/editor profile to. Ignored for publisher applications.
type ApplicationDecisionRequest struct {
	PublisherID *string `json:"publisher_id"`
}
