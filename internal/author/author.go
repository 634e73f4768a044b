package author

import "time"

type Author struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Slug      string    `json:"slug"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	Country   string    `json:"country,omitempty"`
	WikiPage  string    `json:"wiki_page,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
