package engine

import "math"

// CNCState is the mutable modal state of one canal: active modal groups,
// axis positions, offsets, feed/spindle interpretation, and the shared
// variable namespace (`#n` and `Rn` tokens keyed by their literal text so
// the two dialects never collide).
//
// Ported from ncplot7py's CNCState dataclass: same fields, same small
// non-mutating helpers (resolve_target, apply_offsets, compute_distance).
type CNCState struct {
	ModalGroups       map[string]string
	Axes              map[string]float64
	Offsets           map[string]float64
	AxisMultipliers   map[string]float64
	AxisOverrideFeeds map[string]float64

	FeedRate     *float64
	SpindleSpeed *float64
	ToolRadius   *float64
	ToolQuadrant *int

	Parameters map[string]float64
	DDDPSet    map[string]float64

	LineNumber  int
	LoopCommand []string
	Extra       map[string]interface{}
}

// NewCNCState returns a state with the default axis origin (X, Y, Z at 0.0)
// and every map initialised, matching the dataclass defaults in the Python
// original.
func NewCNCState() *CNCState {
	return &CNCState{
		ModalGroups:       map[string]string{},
		Axes:              map[string]float64{"X": 0.0, "Y": 0.0, "Z": 0.0},
		Offsets:           map[string]float64{},
		AxisMultipliers:   map[string]float64{},
		AxisOverrideFeeds: map[string]float64{},
		Parameters:        map[string]float64{},
		DDDPSet:           map[string]float64{},
		LoopCommand:       []string{},
		Extra:             map[string]interface{}{},
	}
}

// Clone returns a structurally independent deep copy: every contained map
// is copied so mutating the clone never touches the original.
func (s *CNCState) Clone() *CNCState {
	clone := &CNCState{
		ModalGroups:       copyStringMap(s.ModalGroups),
		Axes:              copyFloatMap(s.Axes),
		Offsets:           copyFloatMap(s.Offsets),
		AxisMultipliers:   copyFloatMap(s.AxisMultipliers),
		AxisOverrideFeeds: copyFloatMap(s.AxisOverrideFeeds),
		Parameters:        copyFloatMap(s.Parameters),
		DDDPSet:           copyFloatMap(s.DDDPSet),
		LineNumber:        s.LineNumber,
		LoopCommand:       append([]string{}, s.LoopCommand...),
		Extra:             make(map[string]interface{}, len(s.Extra)),
	}
	for k, v := range s.Extra {
		clone.Extra[k] = v
	}
	if s.FeedRate != nil {
		v := *s.FeedRate
		clone.FeedRate = &v
	}
	if s.SpindleSpeed != nil {
		v := *s.SpindleSpeed
		clone.SpindleSpeed = &v
	}
	if s.ToolRadius != nil {
		v := *s.ToolRadius
		clone.ToolRadius = &v
	}
	if s.ToolQuadrant != nil {
		v := *s.ToolQuadrant
		clone.ToolQuadrant = &v
	}
	return clone
}

func copyStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyFloatMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// GetAxis returns the current position of an axis, 0.0 if never set.
func (s *CNCState) GetAxis(name string) float64 {
	return s.Axes[name]
}

// SetAxis records a new axis position. The caller is responsible for
// rejecting non-finite values before calling this.
func (s *CNCState) SetAxis(name string, value float64) {
	s.Axes[name] = value
}

// UpdateAxes applies a batch of axis positions, as produced by a motion
// handler's resolved target.
func (s *CNCState) UpdateAxes(updates map[string]float64) {
	for k, v := range updates {
		s.Axes[k] = v
	}
}

// ApplyOffsets returns the axes with their configured offsets added,
// without mutating state.
func (s *CNCState) ApplyOffsets() map[string]float64 {
	result := make(map[string]float64, len(s.Axes))
	for axis, pos := range s.Axes {
		result[axis] = pos + s.Offsets[axis]
	}
	return result
}

// SetModal sets the active code for a modal group ("" clears it).
func (s *CNCState) SetModal(group, code string) {
	if code == "" {
		delete(s.ModalGroups, group)
		return
	}
	s.ModalGroups[group] = code
}

// GetModal returns the active code for a modal group and whether it is
// currently set.
func (s *CNCState) GetModal(group string) (string, bool) {
	v, ok := s.ModalGroups[group]
	return v, ok
}

// SetParameter stores a program variable under its literal token (e.g.
// "#1" or "R3"), keeping the ISO and Siemens namespaces distinct by
// construction without any extra tagging.
func (s *CNCState) SetParameter(name string, value float64) {
	s.Parameters[name] = value
}

// GetParameter looks up a program variable.
func (s *CNCState) GetParameter(name string) (float64, bool) {
	v, ok := s.Parameters[name]
	return v, ok
}

// ResolveTarget expands a partial axis spec (as parsed from a motion node)
// into a full set of axis positions, over the union of currently known axes
// and the axes named in targetSpec. When absolute is false, targetSpec
// values are treated as deltas applied to the current position.
func (s *CNCState) ResolveTarget(targetSpec map[string]float64, absolute bool) map[string]float64 {
	resolved := make(map[string]float64, len(s.Axes)+len(targetSpec))
	seen := map[string]struct{}{}
	for ax := range s.Axes {
		seen[ax] = struct{}{}
	}
	for ax := range targetSpec {
		seen[ax] = struct{}{}
	}
	for ax := range seen {
		if absolute {
			if v, ok := targetSpec[ax]; ok {
				resolved[ax] = v
			} else {
				resolved[ax] = s.GetAxis(ax)
			}
		} else {
			resolved[ax] = s.GetAxis(ax) + targetSpec[ax]
		}
	}
	return resolved
}

// ComputeDistance returns the Euclidean distance between two axis position
// maps over the given axes (or the union of both maps' keys if axes is nil).
func (s *CNCState) ComputeDistance(a, b map[string]float64, axes []string) float64 {
	if axes == nil {
		seen := map[string]struct{}{}
		for k := range a {
			seen[k] = struct{}{}
		}
		for k := range b {
			seen[k] = struct{}{}
		}
		axes = make([]string, 0, len(seen))
		for k := range seen {
			axes = append(axes, k)
		}
	}
	sum := 0.0
	for _, ax := range axes {
		d := a[ax] - b[ax]
		sum += d * d
	}
	return math.Sqrt(sum)
}
