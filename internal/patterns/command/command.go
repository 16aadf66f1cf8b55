// Package command turns requests into objects so a remote can run, queue
// and undo them without knowing the devices behind them.
package command

import (
	"errors"
	"fmt"
)

var (
	ErrNoCommand     = errors.New("no command assigned")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrInvalidSlot   = errors.New("invalid slot")
)

// Command is an executable, reversible request.
type Command interface {
	Name() string
	Execute() string
	Undo() string
}

// Light is a receiver with on/off state.
type Light struct {
	Room string
	On   bool
}

// Fan is a receiver with a speed from 0 (off) to 3.
type Fan struct {
	Room  string
	Speed int
}

type lightOn struct{ light *Light }

// LightOn switches a light on.
func LightOn(l *Light) Command { return lightOn{light: l} }

func (c lightOn) Name() string { return c.light.Room + " light on" }

func (c lightOn) Execute() string {
	c.light.On = true
	return fmt.Sprintf("%s light is ON", c.light.Room)
}

func (c lightOn) Undo() string {
	c.light.On = false
	return fmt.Sprintf("%s light is OFF", c.light.Room)
}

type lightOff struct{ light *Light }

// LightOff switches a light off.
func LightOff(l *Light) Command { return lightOff{light: l} }

func (c lightOff) Name() string { return c.light.Room + " light off" }

func (c lightOff) Execute() string { return lightOn(c).Undo() }

func (c lightOff) Undo() string { return lightOn(c).Execute() }

type fanSpeed struct {
	fan   *Fan
	speed int
	prev  []int
}

// FanSpeed sets a fan speed, clamped to 0..3. Each Execute remembers the
// speed it replaced, so repeated presses undo one at a time.
func FanSpeed(f *Fan, speed int) Command {
	return &fanSpeed{fan: f, speed: max(0, min(speed, 3))}
}

func (c *fanSpeed) Name() string { return fmt.Sprintf("%s fan speed %d", c.fan.Room, c.speed) }

func (c *fanSpeed) Execute() string {
	c.prev = append(c.prev, c.fan.Speed)
	c.fan.Speed = c.speed
	return c.describe()
}

func (c *fanSpeed) Undo() string {
	if n := len(c.prev); n > 0 {
		c.fan.Speed = c.prev[n-1]
		c.prev = c.prev[:n-1]
	}
	return c.describe()
}

func (c *fanSpeed) describe() string {
	if c.fan.Speed == 0 {
		return fmt.Sprintf("%s fan is OFF", c.fan.Room)
	}
	return fmt.Sprintf("%s fan is at speed %d", c.fan.Room, c.fan.Speed)
}

// Macro runs several commands as one; Undo reverses them in reverse order.
type Macro struct {
	Label    string
	Commands []Command
}

func (m Macro) Name() string { return m.Label }

func (m Macro) Execute() string {
	out := ""
	for i, c := range m.Commands {
		if i > 0 {
			out += "; "
		}
		out += c.Execute()
	}
	return out
}

func (m Macro) Undo() string {
	out := ""
	for i := len(m.Commands) - 1; i >= 0; i-- {
		if out != "" {
			out += "; "
		}
		out += m.Commands[i].Undo()
	}
	return out
}
