package domain

import "time"

// Diagnostic is a text report produced for a customer after an online
// questionnaire, retrieved by its slug.
type Diagnostic struct {
	Slug      string
	Content   string
	CreatedAt time.Time
}
