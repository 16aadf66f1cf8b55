package lessons

import (
	"context"

	"lld/internal/domain/model"
	"lld/internal/patterns/command"
)

func commandLesson() lesson {
	return lesson{
		info: model.Lesson{
			Key:     "command",
			Title:   "Smart-home remote with undo",
			Pattern: "Command",
			Summary: "Buttons hold command objects; the remote keeps history so presses can be undone.",
		},
		run: func(_ context.Context, p *printer) error {
			light := &command.Light{Room: "living room"}
			fan := &command.Fan{Room: "bedroom"}

			remote := command.NewRemote(4)
			bindings := []command.Command{
				command.LightOn(light),
				command.LightOff(light),
				command.FanSpeed(fan, 2),
				command.Macro{Label: "movie night", Commands: []command.Command{command.LightOff(light), command.FanSpeed(fan, 1)}},
			}
			for slot, c := range bindings {
				if err := remote.SetCommand(slot, c); err != nil {
					return err
				}
			}

			for _, slot := range []int{0, 2, 3} {
				out, err := remote.Press(slot)
				if err != nil {
					return err
				}
				p.line("press %d: %s", slot, out)
			}

			for remote.Pending() > 0 {
				out, err := remote.Undo()
				if err != nil {
					return err
				}
				p.line("undo: %s", out)
			}
			if _, err := remote.Undo(); err != nil {
				p.line("undo: %v", err)
			}

			if err := remote.SetCommand(1, nil); err != nil {
				return err
			}
			if _, err := remote.Press(1); err != nil {
				p.line("press 1: %v", err)
			}
			return nil
		},
	}
}
