package domain

import "time"

// Review is a user-submitted product review. User, Product and Image are
// optional; filtering and sorting treat missing values as empty strings.
type Review struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Rating  int       `json:"rating"` // 1-5
	Comment string    `json:"comment"`
	User    string    `json:"user,omitempty"`
	Product string    `json:"product,omitempty"`
	Image   string    `json:"image,omitempty"`
}
