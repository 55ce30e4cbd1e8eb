package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/milk9111/polarities/movement"
)

// keyframe sets the held input from Tick on, until the next keyframe.
type keyframe struct {
	Tick  int
	Input movement.RawInput
}

// script is a timeline of held inputs sorted by tick.
type script []keyframe

// parseScript reads "tick:button,button;tick:..." where buttons are left,
// right, up, down, jump and sprint. An empty button list releases
// everything.
func parseScript(s string) (script, error) {
	var out script
	seen := map[int]bool{}
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		tickText, buttons, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("script entry %q: missing ':'", entry)
		}
		tick, err := strconv.Atoi(strings.TrimSpace(tickText))
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("script entry %q: bad tick", entry)
		}
		if seen[tick] {
			return nil, fmt.Errorf("script entry %q: tick %d repeated", entry, tick)
		}
		seen[tick] = true

		kf := keyframe{Tick: tick}
		for _, b := range strings.Split(buttons, ",") {
			switch strings.ToLower(strings.TrimSpace(b)) {
			case "":
			case "left":
				kf.Input.Horizontal -= 1
			case "right":
				kf.Input.Horizontal += 1
			case "up":
				kf.Input.Vertical += 1
			case "down":
				kf.Input.Vertical -= 1
			case "jump":
				kf.Input.Jump = true
			case "sprint":
				kf.Input.Sprint = true
			default:
				return nil, fmt.Errorf("script entry %q: unknown button %q", entry, b)
			}
		}
		out = append(out, kf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tick < out[j].Tick })
	return out, nil
}

// at returns the input held on tick.
func (s script) at(tick int) movement.RawInput {
	var in movement.RawInput
	for _, kf := range s {
		if kf.Tick > tick {
			break
		}
		in = kf.Input
	}
	return in
}

// player replays a script one tick per Sample call.
type player struct {
	script script
	tick   int
}

func (p *player) Sample() movement.RawInput {
	in := p.script.at(p.tick)
	p.tick++
	return in
}
