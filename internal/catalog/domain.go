// Package catalog exposes the portal's read-only list of proof-of-concept
// project descriptors.
package catalog

// POC describes one proof-of-concept project exposed through the portal.
type POC struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"omitempty,url"`
	ImageURL    string `json:"imageUrl"`
	Status      string `json:"status" validate:"required,oneof=active development archived"`
	Version     string `json:"version"`
	CreatedAt   string `json:"createdAt"`
}
