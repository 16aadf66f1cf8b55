// Package proxy stands objects in front of other objects: to guard access,
// to defer expensive work, or to remember results.
package proxy

import (
	"errors"
	"fmt"
)

var (
	// ErrPremiumOnly is returned when a non-premium user asks for a premium feature.
	ErrPremiumOnly = errors.New("premium membership required")
	// ErrNoDocument is returned for an empty document path.
	ErrNoDocument = errors.New("document path is empty")
)

// User is the caller of a protected feature.
type User struct {
	Name    string
	Premium bool
}

// DocumentReader unlocks a protected document.
type DocumentReader interface {
	Unlock(user User, path string) (string, error)
}

// PDFReader is the real subject.
type PDFReader struct{}

func (PDFReader) Unlock(user User, path string) (string, error) {
	if path == "" {
		return "", ErrNoDocument
	}
	return fmt.Sprintf("[reader] unlocked %s for %s", path, user.Name), nil
}

// SecureReader only forwards premium users to the wrapped reader.
type SecureReader struct {
	reader DocumentReader
}

func NewSecureReader(reader DocumentReader) *SecureReader {
	return &SecureReader{reader: reader}
}

func (s *SecureReader) Unlock(user User, path string) (string, error) {
	if !user.Premium {
		return "", fmt.Errorf("unlock %s for %s: %w", path, user.Name, ErrPremiumOnly)
	}
	return s.reader.Unlock(user, path)
}
