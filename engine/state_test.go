package engine

import "testing"

func TestNewCNCStateDefaults(t *testing.T) {
	s := NewCNCState()
	for _, ax := range []string{"X", "Y", "Z"} {
		if s.GetAxis(ax) != 0.0 {
			t.Errorf("expected axis %s to start at 0, got %v", ax, s.GetAxis(ax))
		}
	}
	if _, ok := s.GetModal("motion"); ok {
		t.Error("expected no modal group to be set initially")
	}
}

func TestCNCStateCloneIsIndependent(t *testing.T) {
	s := NewCNCState()
	s.SetAxis("X", 10)
	s.SetParameter("#1", 5)
	feed := 100.0
	s.FeedRate = &feed

	clone := s.Clone()
	clone.SetAxis("X", 99)
	clone.SetParameter("#1", 50)
	*clone.FeedRate = 200

	if s.GetAxis("X") != 10 {
		t.Errorf("mutating clone's axis leaked into original: got %v", s.GetAxis("X"))
	}
	if v, _ := s.GetParameter("#1"); v != 5 {
		t.Errorf("mutating clone's parameter leaked into original: got %v", v)
	}
	if *s.FeedRate != 100 {
		t.Errorf("mutating clone's feed rate leaked into original: got %v", *s.FeedRate)
	}
}

func TestResolveTargetAbsoluteAndIncremental(t *testing.T) {
	s := NewCNCState()
	s.SetAxis("X", 5)
	s.SetAxis("Y", 5)

	abs := s.ResolveTarget(map[string]float64{"X": 20}, true)
	if abs["X"] != 20 {
		t.Errorf("absolute target: expected X=20, got %v", abs["X"])
	}
	if abs["Y"] != 5 {
		t.Errorf("absolute target: expected untouched Y to hold at 5, got %v", abs["Y"])
	}

	inc := s.ResolveTarget(map[string]float64{"X": 20}, false)
	if inc["X"] != 25 {
		t.Errorf("incremental target: expected X=25 (5+20), got %v", inc["X"])
	}
}

func TestComputeDistance(t *testing.T) {
	s := NewCNCState()
	a := map[string]float64{"X": 0, "Y": 0}
	b := map[string]float64{"X": 3, "Y": 4}
	if d := s.ComputeDistance(a, b, []string{"X", "Y"}); d != 5 {
		t.Errorf("expected 3-4-5 triangle distance 5, got %v", d)
	}
}

func TestSetModalAndGetModal(t *testing.T) {
	s := NewCNCState()
	s.SetModal("distance", "G91")
	v, ok := s.GetModal("distance")
	if !ok || v != "G91" {
		t.Errorf("expected distance modal G91, got %q (ok=%v)", v, ok)
	}
}
