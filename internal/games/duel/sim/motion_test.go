package sim

import "testing"

func TestStepMotionMovesVerticallyOnly(t *testing.T) {
	a := testAgent(Agent1, 50, 150, 2)
	StepMotion(a, 600)

	if a.Pos.Y != 152 {
		t.Errorf("Pos.Y = %v, expected 152", a.Pos.Y)
	}
	if a.Pos.X != 50 || a.Vel.X != 0 {
		t.Errorf("horizontal state changed: pos=%v vel=%v", a.Pos, a.Vel)
	}
}

func TestStepMotionReflectsAtTop(t *testing.T) {
	// Moving up, one step from touching the top wall.
	a := testAgent(Agent1, 50, 22, -2)

	StepMotion(a, 600)
	if a.Pos.Y != 20 {
		t.Fatalf("Pos.Y = %v, expected 20", a.Pos.Y)
	}
	if a.Vel.Y != 2 {
		t.Errorf("Vel.Y after touching top = %v, expected 2", a.Vel.Y)
	}

	prev := a.Pos.Y
	for i := 0; i < 5; i++ {
		StepMotion(a, 600)
		if a.Pos.Y <= prev {
			t.Fatalf("step %d: y should move away from the top wall, was %v now %v", i, prev, a.Pos.Y)
		}
		prev = a.Pos.Y
	}
}

func TestStepMotionReflectsAtBottom(t *testing.T) {
	// Scenario: agent at (50,150) with dy=+2 eventually reaches the bottom
	// at y=580 and turns around with dy=-2.
	a := testAgent(Agent1, 50, 150, 2)

	for i := 0; i < 1000 && a.Vel.Y > 0; i++ {
		StepMotion(a, 600)
	}
	if a.Pos.Y != 580 {
		t.Errorf("turned at y=%v, expected 580", a.Pos.Y)
	}
	if a.Vel.Y != -2 {
		t.Errorf("Vel.Y = %v, expected -2", a.Vel.Y)
	}

	before := a.Pos.Y
	StepMotion(a, 600)
	if a.Pos.Y >= before {
		t.Errorf("y should decrease after reflection, was %v now %v", before, a.Pos.Y)
	}
}

func TestStepMotionStaysInBounds(t *testing.T) {
	speeds := []float64{1, 2, 3, 7, 10}
	for _, speed := range speeds {
		a := testAgent(Agent1, 50, 150, speed)
		for frame := 0; frame < 5000; frame++ {
			StepMotion(a, 600)
			// The position may overshoot by less than one step before the
			// reflection brings it back.
			if a.Pos.Y < a.Radius-speed || a.Pos.Y > 600-a.Radius+speed {
				t.Fatalf("speed %v frame %d: y=%v escaped the arena", speed, frame, a.Pos.Y)
			}
		}
	}
}

func TestStepMotionStaysInsideWhenStepsDivideEvenly(t *testing.T) {
	// With integral start and speed dividing the travel distance, the agent
	// touches the walls exactly and radius <= y <= H - radius always holds.
	a := testAgent(Agent1, 50, 150, 2)
	for frame := 0; frame < 3000; frame++ {
		StepMotion(a, 600)
		if a.Pos.Y < a.Radius || a.Pos.Y > 600-a.Radius {
			t.Fatalf("frame %d: y=%v outside [%v, %v]", frame, a.Pos.Y, a.Radius, 600-a.Radius)
		}
	}
}

func TestStepMotionDoesNotStickToWall(t *testing.T) {
	// Overshot the bottom and was already turned around by a pointer bounce:
	// it must keep heading back into the arena.
	a := testAgent(Agent1, 50, 581, -3)
	for i := 0; i < 5; i++ {
		StepMotion(a, 600)
	}
	if a.Vel.Y != -3 {
		t.Errorf("Vel.Y = %v, expected -3", a.Vel.Y)
	}
	if a.Pos.Y != 566 {
		t.Errorf("Pos.Y = %v, expected 566", a.Pos.Y)
	}
}

func TestStepMotionLeavingTopWallKeepsDirection(t *testing.T) {
	// Inside the top wall zone but already descending.
	a := testAgent(Agent1, 50, 17, 2)
	StepMotion(a, 600)

	if a.Pos.Y != 19 {
		t.Errorf("Pos.Y = %v, expected 19", a.Pos.Y)
	}
	if a.Vel.Y != 2 {
		t.Errorf("Vel.Y = %v, expected 2", a.Vel.Y)
	}
}
