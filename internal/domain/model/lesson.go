package model

// Lesson describes a runnable pattern demonstration.
type Lesson struct {
	Key     string
	Title   string
	Pattern string
	Summary string
}
