package parser

// SiemensParser parses Siemens-mill programs: the same generic grammar,
// including `X=R1` substitution syntax and `NAME(args...)` canned-cycle
// calls.
type SiemensParser struct {
	genericParser
}

// NewSiemensParser constructs a SiemensParser.
func NewSiemensParser() *SiemensParser { return &SiemensParser{} }

var _ Parser = (*SiemensParser)(nil)
