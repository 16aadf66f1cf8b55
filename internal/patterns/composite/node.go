// Package composite models a file system where files and folders are used
// through the same Node interface.
package composite

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

var (
	ErrNotFound = errors.New("no such file or directory")
	ErrNotDir   = errors.New("not a directory")
	ErrExists   = errors.New("entry already exists")
)

// Node is a file system entry.
type Node interface {
	Name() string
	Size() int64
	IsDir() bool
	// Ls writes the entry itself (files) or its direct children (folders).
	Ls(w io.Writer) error
	// OpenAll writes the entry and everything below it, indented by depth.
	OpenAll(w io.Writer, depth int) error
}

// File is a leaf.
type File struct {
	name string
	size int64
}

func NewFile(name string, size int64) *File {
	return &File{name: name, size: size}
}

func (f *File) Name() string { return f.name }
func (f *File) Size() int64  { return f.size }
func (f *File) IsDir() bool  { return false }

func (f *File) Ls(w io.Writer) error {
	_, err := fmt.Fprintln(w, f.name)
	return err
}

func (f *File) OpenAll(w io.Writer, depth int) error {
	_, err := fmt.Fprintf(w, "%s%s (%d bytes)\n", indent(depth), f.name, f.size)
	return err
}

// Folder is a composite. Children keep insertion order.
type Folder struct {
	name     string
	parent   *Folder
	children []Node
	index    map[string]Node
}

func NewFolder(name string) *Folder {
	return &Folder{name: name, index: make(map[string]Node)}
}

func (d *Folder) Name() string    { return d.name }
func (d *Folder) IsDir() bool     { return true }
func (d *Folder) Parent() *Folder { return d.parent }

// Children returns the direct children in insertion order.
func (d *Folder) Children() []Node {
	return append([]Node(nil), d.children...)
}

// Add attaches n under d. Folders remember their parent so Cd("..") works.
func (d *Folder) Add(n Node) error {
	if _, exists := d.index[n.Name()]; exists {
		return fmt.Errorf("%s/%s: %w", d.name, n.Name(), ErrExists)
	}
	if sub, ok := n.(*Folder); ok {
		sub.parent = d
	}
	d.children = append(d.children, n)
	d.index[n.Name()] = n
	return nil
}

// Size is the sum of all leaf sizes beneath d.
func (d *Folder) Size() int64 {
	var total int64
	for _, c := range d.children {
		total += c.Size()
	}
	return total
}

func (d *Folder) Ls(w io.Writer) error {
	for _, c := range d.children {
		name := c.Name()
		if c.IsDir() {
			name += "/"
		}
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func (d *Folder) OpenAll(w io.Writer, depth int) error {
	if _, err := fmt.Fprintf(w, "%s+ %s/\n", indent(depth), d.name); err != nil {
		return err
	}
	for _, c := range d.children {
		if err := c.OpenAll(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Cd returns the child folder called name.
func (d *Folder) Cd(name string) (*Folder, error) {
	n, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("cd %s: %w", name, ErrNotFound)
	}
	sub, ok := n.(*Folder)
	if !ok {
		return nil, fmt.Errorf("cd %s: %w", name, ErrNotDir)
	}
	return sub, nil
}

// Lookup returns a direct child by name.
func (d *Folder) Lookup(name string) (Node, bool) {
	n, ok := d.index[name]
	return n, ok
}

// Walk visits every node under d depth-first, passing its slash-separated path.
func (d *Folder) Walk(fn func(path string, n Node) error) error {
	return walk(d.name, d, fn)
}

func walk(path string, n Node, fn func(string, Node) error) error {
	if err := fn(path, n); err != nil {
		return err
	}
	dir, ok := n.(*Folder)
	if !ok {
		return nil
	}
	for _, c := range dir.children {
		if err := walk(path+"/"+c.Name(), c, fn); err != nil {
			return err
		}
	}
	return nil
}

// Largest returns up to n files under d ordered by size, largest first.
func (d *Folder) Largest(n int) []*File {
	var files []*File
	_ = d.Walk(func(_ string, node Node) error {
		if f, ok := node.(*File); ok {
			files = append(files, f)
		}
		return nil
	})
	sort.SliceStable(files, func(i, j int) bool { return files[i].size > files[j].size })
	if n < len(files) {
		files = files[:n]
	}
	return files
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
