package model

import "time"

// Document is a rendered editor document as handed to storage.
type Document struct {
	ID        string
	Content   string
	Format    string
	CreatedAt time.Time
}
