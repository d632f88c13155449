// Package scenario scripts player input over frames so a simulation can run
// without a keyboard.
package scenario

import (
	"fmt"
	"os"

	"Locomotion/internal/input"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Segment holds the same input for a number of frames. Jump presses on the
// first frame of the segment and releases on the next. A jump segment always
// starts a fresh press, even right after another one-frame jump segment.
type Segment struct {
	Name   string     `yaml:"name"`
	Frames int        `yaml:"frames"`
	Move   [2]float32 `yaml:"move"`
	Sprint float32    `yaml:"sprint"`
	Jump   bool       `yaml:"jump"`
}

type Scenario struct {
	Name      string    `yaml:"name"`
	DeltaTime float32   `yaml:"dt"`
	Segments  []Segment `yaml:"segments"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and checks a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	for i, seg := range s.Segments {
		if seg.Frames <= 0 {
			return nil, fmt.Errorf("segment %d (%q): frames must be positive, got %d", i, seg.Name, seg.Frames)
		}
	}
	return &s, nil
}

// TotalFrames is the length of the scenario in frames.
func (s *Scenario) TotalFrames() int {
	total := 0
	for _, seg := range s.Segments {
		total += seg.Frames
	}
	return total
}

// SegmentAt returns the segment active on frame and the frame offset inside it.
func (s *Scenario) SegmentAt(frame int) (Segment, int, bool) {
	if frame < 0 {
		return Segment{}, 0, false
	}
	for _, seg := range s.Segments {
		if frame < seg.Frames {
			return seg, frame, true
		}
		frame -= seg.Frames
	}
	return Segment{}, 0, false
}

// Apply writes the input for frame into actions. Past the end every action is
// released and reads zero. It reports whether the frame is inside the scenario.
func (s *Scenario) Apply(frame int, actions *input.Actions) bool {
	seg, offset, ok := s.SegmentAt(frame)
	if !ok {
		actions.Move.Set(mgl32.Vec2{})
		actions.Sprint.Set(0)
		actions.Jump.Release()
		return false
	}

	actions.Move.Set(mgl32.Vec2(seg.Move))
	actions.Sprint.Set(seg.Sprint)
	if seg.Jump && offset == 0 {
		actions.Jump.Release()
		actions.Jump.Press()
	} else {
		actions.Jump.Release()
	}
	return true
}

// Player walks a scenario one frame at a time.
type Player struct {
	scenario *Scenario
	frame    int
}

func NewPlayer(s *Scenario) *Player {
	return &Player{scenario: s}
}

// Next feeds the current frame into actions and advances. It returns false
// once the scenario is exhausted; the actions are left released.
func (p *Player) Next(actions *input.Actions) bool {
	ok := p.scenario.Apply(p.frame, actions)
	if ok {
		p.frame++
	}
	return ok
}

func (p *Player) Frame() int {
	return p.frame
}

func (p *Player) Done() bool {
	return p.frame >= p.scenario.TotalFrames()
}

func (p *Player) Rewind() {
	p.frame = 0
}
