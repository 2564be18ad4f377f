package model

// AuthUser is the CMS account profile. Profile fields are editable by the
// user through the authenticated CMS write path.
type AuthUser struct {
	ID           int             `json:"id"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	Confirmed    bool            `json:"confirmed"`
	Blocked      bool            `json:"blocked"`
	FirstName    string          `json:"FirstName,omitempty"`
	LastName     string          `json:"LastName,omitempty"`
	Phone        string          `json:"Phone,omitempty"`
	Biography    []RichTextBlock `json:"Biography,omitempty"`
	ProfileImage *Media          `json:"ProfileImage,omitempty"`
}
