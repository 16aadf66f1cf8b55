// Package editor builds documents out of elements and hands rendering and
// persistence to interchangeable collaborators.
package editor

// Element is a piece of a document.
type Element interface {
	isElement()
}

// Text is a run of plain text.
type Text struct {
	Content string
}

// Image references a picture by path.
type Image struct {
	Path string
	Alt  string
}

// NewLine breaks the current line.
type NewLine struct{}

// TabSpace inserts a tab stop.
type TabSpace struct{}

func (Text) isElement()     {}
func (Image) isElement()    {}
func (NewLine) isElement()  {}
func (TabSpace) isElement() {}
