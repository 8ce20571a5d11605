package capture

import (
	"fmt"

	"rotorcast/internal/input"
)

// Script produces synthetic input for each tick of a headless run.
type Script struct {
	Name string
	Tick func(tick int) input.Snapshot
}

// Orbit turns the camera by speed pointer counts every tick. Negative
// speeds turn the other way.
func Orbit(speed int) Script {
	return Script{
		Name: "orbit",
		Tick: func(int) input.Snapshot {
			return input.Snapshot{PointerDX: speed}
		},
	}
}

// Dolly walks the camera forward every tick.
func Dolly() Script {
	return Script{
		Name: "dolly",
		Tick: func(int) input.Snapshot {
			return input.Snapshot{Forward: true}
		},
	}
}

// Static holds the camera still. Every frame repeats the first, which
// makes it the baseline for digest and dedupe checks.
func Static() Script {
	return Script{
		Name: "static",
		Tick: func(int) input.Snapshot {
			return input.Snapshot{}
		},
	}
}

// ByName resolves a script named in config or on the command line.
func ByName(name string, speed int) (Script, error) {
	switch name {
	case "orbit":
		return Orbit(speed), nil
	case "dolly":
		return Dolly(), nil
	case "static":
		return Static(), nil
	default:
		return Script{}, fmt.Errorf("capture: unknown script %q", name)
	}
}
