package packets

import "github.com/iaamonline/member-portal/internal/model"

type SessionResponse struct {
	User model.AuthUser `json:"user"`
	JWT  string         `json:"jwt"`
}

// AvailabilityResponse answers the pre-submission username/email check.
// Fallback marks an advisory "available" produced because the backend could
// not be asked; the CMS stays authoritative at registration time.
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Fallback  bool   `json:"fallback,omitempty"`
	Error     string `json:"error,omitempty"`
}
