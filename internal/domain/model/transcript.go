package model

import "time"

// Transcript captures the console output of a single lesson run.
type Transcript struct {
	Lesson   Lesson
	Output   string
	Duration time.Duration
	Err      error
}

// Failed reports whether the lesson returned an error.
func (t Transcript) Failed() bool {
	return t.Err != nil
}

// Digest is a transport-agnostic bundle of transcripts for downstream publishers.
type Digest struct {
	Title       string
	Transcripts []Transcript
	StartedAt   time.Time
}

// Failures counts the transcripts whose lesson returned an error.
func (d Digest) Failures() int {
	n := 0
	for _, t := range d.Transcripts {
		if t.Failed() {
			n++
		}
	}
	return n
}
