// Package strategy holds behaviors that are chosen by the caller and can be
// swapped on a live object.
package strategy

// WalkBehavior moves a robot.
type WalkBehavior interface {
	Walk() string
}

// TalkBehavior makes a robot speak.
type TalkBehavior interface {
	Talk() string
}

// FlyBehavior lifts a robot off the ground.
type FlyBehavior interface {
	Fly() string
}

type NormalWalk struct{}

func (NormalWalk) Walk() string { return "walking normally" }

type NoWalk struct{}

func (NoWalk) Walk() string { return "cannot walk" }

type NormalTalk struct{}

func (NormalTalk) Talk() string { return "talking normally" }

type NoTalk struct{}

func (NoTalk) Talk() string { return "cannot talk" }

type NormalFly struct{}

func (NormalFly) Fly() string { return "flying normally" }

type NoFly struct{}

func (NoFly) Fly() string { return "cannot fly" }

// JetFly is a stronger flying behavior that can be attached at runtime.
type JetFly struct{}

func (JetFly) Fly() string { return "flying with jet boosters" }

// Robot delegates every action to the behavior currently assigned to it.
type Robot struct {
	name       string
	projection string
	walk       WalkBehavior
	talk       TalkBehavior
	fly        FlyBehavior
}

// NewRobot builds a robot. Nil behaviors fall back to their "No" variant.
func NewRobot(name, projection string, walk WalkBehavior, talk TalkBehavior, fly FlyBehavior) *Robot {
	r := &Robot{name: name, projection: projection}
	r.SetWalk(walk)
	r.SetTalk(talk)
	r.SetFly(fly)
	return r
}

// NewCompanionRobot returns a robot that walks and talks but stays grounded.
func NewCompanionRobot(name string) *Robot {
	return NewRobot(name, "displaying friendly companion features", NormalWalk{}, NormalTalk{}, NoFly{})
}

// NewWorkerRobot returns a silent robot that walks and flies.
func NewWorkerRobot(name string) *Robot {
	return NewRobot(name, "displaying worker efficiency stats", NormalWalk{}, NoTalk{}, NormalFly{})
}

func (r *Robot) Name() string       { return r.name }
func (r *Robot) Projection() string { return r.projection }
func (r *Robot) Walk() string       { return r.walk.Walk() }
func (r *Robot) Talk() string       { return r.talk.Talk() }
func (r *Robot) Fly() string        { return r.fly.Fly() }

func (r *Robot) SetWalk(b WalkBehavior) {
	if b == nil {
		b = NoWalk{}
	}
	r.walk = b
}

func (r *Robot) SetTalk(b TalkBehavior) {
	if b == nil {
		b = NoTalk{}
	}
	r.talk = b
}

func (r *Robot) SetFly(b FlyBehavior) {
	if b == nil {
		b = NoFly{}
	}
	r.fly = b
}
