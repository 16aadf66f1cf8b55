package lessons

import (
	"context"
	"fmt"

	"lld/internal/domain/model"
	"lld/internal/domain/ports"
	"lld/internal/patterns/editor"
)

func editorLesson(store ports.DocumentStore) lesson {
	return lesson{
		info: model.Lesson{
			Key:     "editor",
			Title:   "Document editor",
			Pattern: "Strategy (rendering and storage)",
			Summary: "Elements build a document; renderers and storage backends are swappable collaborators.",
		},
		run: func(ctx context.Context, p *printer) error {
			ed := editor.New(editor.WithStorage(store)).
				AddText("Design patterns").
				AddNewLine().
				AddTab().
				AddText("Prefer composition over inheritance.").
				AddNewLine().
				AddImage("uml/strategy.png", "strategy diagram")

			for _, r := range []editor.Renderer{editor.PlainRenderer{}, editor.HTMLRenderer{}} {
				ed.SetRenderer(r)
				out, err := ed.Render()
				if err != nil {
					return err
				}
				p.line("--- %s ---", r.Format())
				p.line("%s", out)
			}

			id, err := ed.Save(ctx)
			if err != nil {
				return err
			}
			doc, err := store.Load(ctx, id)
			if err != nil {
				return fmt.Errorf("reload document: %w", err)
			}
			p.line("saved %d elements as %s (%d bytes), reload ok: %t", ed.Len(), doc.Format, len(doc.Content), doc.ID == id)
			return nil
		},
	}
}
