// Package movement turns discrete movement actions into translations of
// position sources, so scripted bodies move between collision sweeps.
package movement

import "fmt"

type Action uint8

const (
	Forward Action = iota
	Backward
	Left
	Right
	Run
)

func (a Action) String() string {
	switch a {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Run:
		return "run"
	}
	return "unknown"
}

// ParseAction is the inverse of Action.String
func ParseAction(name string) (Action, error) {
	for _, action := range []Action{Forward, Backward, Left, Right, Run} {
		if action.String() == name {
			return action, nil
		}
	}

	return 0, fmt.Errorf("unknown movement action %q", name)
}
