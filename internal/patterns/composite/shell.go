package composite

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrUnknownCommand = errors.New("unknown command")

// Shell keeps a current directory and runs ls, cd, openAll, size and pwd.
type Shell struct {
	root *Folder
	cwd  *Folder
}

func NewShell(root *Folder) *Shell {
	return &Shell{root: root, cwd: root}
}

// Cwd is the current folder.
func (s *Shell) Cwd() *Folder { return s.cwd }

// Pwd returns the absolute path of the current folder.
func (s *Shell) Pwd() string {
	var parts []string
	for cur := s.cwd; cur != nil && cur != s.root; cur = cur.parent {
		parts = append([]string{cur.name}, parts...)
	}
	return "/" + strings.Join(parts, "/")
}

// Exec runs a single command line and writes its output to w.
func (s *Shell) Exec(w io.Writer, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "ls":
		target, err := s.resolveArg(args)
		if err != nil {
			return err
		}
		return target.Ls(w)
	case "openAll":
		target, err := s.resolveArg(args)
		if err != nil {
			return err
		}
		return target.OpenAll(w, 0)
	case "size":
		target, err := s.resolveArg(args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%d\n", target.Size())
		return err
	case "cd":
		path := "/"
		if len(args) > 0 {
			path = args[0]
		}
		return s.Cd(path)
	case "pwd":
		_, err := fmt.Fprintln(w, s.Pwd())
		return err
	default:
		return fmt.Errorf("%s: %w", cmd, ErrUnknownCommand)
	}
}

// Cd changes directory. Paths may be absolute, relative, and use "..".
func (s *Shell) Cd(path string) error {
	n, err := s.Resolve(path)
	if err != nil {
		return err
	}
	dir, ok := n.(*Folder)
	if !ok {
		return fmt.Errorf("cd %s: %w", path, ErrNotDir)
	}
	s.cwd = dir
	return nil
}

// Resolve finds the node at path relative to the current folder.
func (s *Shell) Resolve(path string) (Node, error) {
	cur := s.cwd
	if strings.HasPrefix(path, "/") {
		cur = s.root
	}

	var node Node = cur
	for _, part := range strings.Split(path, "/") {
		switch part {
		case "", ".":
			continue
		case "..":
			dir, ok := node.(*Folder)
			if !ok {
				return nil, fmt.Errorf("%s: %w", path, ErrNotDir)
			}
			if dir.parent != nil {
				node = dir.parent
			}
			continue
		}

		dir, ok := node.(*Folder)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrNotDir)
		}
		child, ok := dir.Lookup(part)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		node = child
	}
	return node, nil
}

func (s *Shell) resolveArg(args []string) (Node, error) {
	if len(args) == 0 {
		return s.cwd, nil
	}
	return s.Resolve(args[0])
}
