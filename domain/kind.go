package domain

// Kind selects which abstract domain a verification run uses to bound a
// score or sample.
type Kind int

const (
	Interval Kind = iota
	RAF
	Hybrid
	OHInterval
	OHRAF
)

// String renders k for config echo and report headers.
func (k Kind) String() string {
	switch k {
	case Interval:
		return "INTERVAL"
	case RAF:
		return "RAF"
	case Hybrid:
		return "HYBRID"
	case OHInterval:
		return "OH_INTERVAL"
	case OHRAF:
		return "OH_RAF"
	default:
		return "UNKNOWN"
	}
}
