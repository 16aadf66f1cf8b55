package lessons

import (
	"context"
	"fmt"

	"lld/internal/config"
	"lld/internal/domain/model"
	"lld/internal/patterns/composite"
)

var shellScript = []string{
	"ls",
	"openAll",
	"size",
	"cd photos/trip",
	"pwd",
	"ls",
	"size",
	"cd ../..",
	"cd readme.md",
	"cd nowhere",
	"pwd",
}

func compositeLesson(fixture config.Entry) lesson {
	return lesson{
		info: model.Lesson{
			Key:     "composite",
			Title:   "File system ls, cd and openAll",
			Pattern: "Composite",
			Summary: "Files and folders share one interface, so listing and sizing recurse without type checks.",
		},
		run: func(_ context.Context, p *printer) error {
			root, err := BuildTree(fixture)
			if err != nil {
				return err
			}
			sh := composite.NewShell(root)
			for _, line := range shellScript {
				p.line("$ %s", line)
				if err := sh.Exec(p.writer(), line); err != nil {
					p.line("%v", err)
				}
			}

			largest := root.Largest(1)
			if len(largest) > 0 {
				p.line("largest file: %s (%d bytes)", largest[0].Name(), largest[0].Size())
			}
			return nil
		},
	}
}

// BuildTree converts a fixture entry into a composite folder.
func BuildTree(e config.Entry) (*composite.Folder, error) {
	if !e.IsDir() {
		return nil, fmt.Errorf("file system root %q must be a folder", e.Name)
	}
	root := composite.NewFolder(e.Name)
	if err := addChildren(root, e.Children); err != nil {
		return nil, err
	}
	return root, nil
}

func addChildren(dir *composite.Folder, entries []config.Entry) error {
	for _, e := range entries {
		if !e.IsDir() {
			if err := dir.Add(composite.NewFile(e.Name, e.Size)); err != nil {
				return err
			}
			continue
		}
		sub := composite.NewFolder(e.Name)
		if err := dir.Add(sub); err != nil {
			return err
		}
		if err := addChildren(sub, e.Children); err != nil {
			return err
		}
	}
	return nil
}
