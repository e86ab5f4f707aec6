package region

// Kind identifies the shape of an adversarial perturbation.
type Kind int

const (
	L1 Kind = iota
	LInf
	HyperRect
	Frame
	ClippedHyperRect
	FromFile
)

// String renders k for report headers and error messages.
func (k Kind) String() string {
	switch k {
	case L1:
		return "L1"
	case LInf:
		return "L_INF"
	case HyperRect:
		return "HYPER_RECT"
	case Frame:
		return "FRAME"
	case ClippedHyperRect:
		return "CLIPPED_HYPER_RECT"
	case FromFile:
		return "FROM_FILE"
	default:
		return "UNKNOWN"
	}
}

// Perturbation describes the magnitude and shape of an adversarial
// perturbation, independent of any particular sample. Mirrors struct
// perturbation (perturbation.c), extended with the ClippedHyperRect and
// FromFile variants.
type Perturbation struct {
	Kind      Kind
	Magnitude float64 // L1, LInf

	EpsilonL []float64 // HyperRect, ClippedHyperRect, FromFile: per-feature lower slack
	EpsilonU []float64 // HyperRect, ClippedHyperRect, FromFile: per-feature upper slack

	ClipMin []float64 // ClippedHyperRect: per-feature floor a perturbed value may not go below
	ClipMax []float64 // ClippedHyperRect: per-feature ceiling a perturbed value may not exceed

	ImageWidth, ImageHeight int // Frame
	FrameWidth, FrameHeight int // Frame
}

// NewL1 returns an L1-ball perturbation of the given magnitude.
func NewL1(magnitude float64) Perturbation {
	return Perturbation{Kind: L1, Magnitude: magnitude}
}

// NewLInf returns an L-infinity-ball perturbation of the given magnitude.
func NewLInf(magnitude float64) Perturbation {
	return Perturbation{Kind: LInf, Magnitude: magnitude}
}

// NewHyperRect returns a per-feature hyperrectangle perturbation.
//
// Contract: len(epsilonL) == len(epsilonU).
func NewHyperRect(epsilonL, epsilonU []float64) Perturbation {
	return Perturbation{Kind: HyperRect, EpsilonL: epsilonL, EpsilonU: epsilonU}
}

// NewClippedHyperRect returns a per-feature hyperrectangle perturbation
// whose resulting bounds are additionally clamped to [clipMin, clipMax] —
// the supplemented variant used when a feature has a known valid range
// (e.g. pixel intensities in [0, 1]) that an unclipped epsilon would
// otherwise overshoot.
//
// Contract: epsilonL, epsilonU, clipMin, clipMax all equal length.
func NewClippedHyperRect(epsilonL, epsilonU, clipMin, clipMax []float64) Perturbation {
	return Perturbation{
		Kind: ClippedHyperRect, EpsilonL: epsilonL, EpsilonU: epsilonU,
		ClipMin: clipMin, ClipMax: clipMax,
	}
}

// NewFrame returns an occlusive-frame perturbation over a row-major image
// sample: every pixel outside the centered frameWidth x frameHeight
// window may vary freely in [0, 1]; pixels inside the frame are fixed.
func NewFrame(imageWidth, imageHeight, frameWidth, frameHeight int) Perturbation {
	return Perturbation{
		Kind: Frame, ImageWidth: imageWidth, ImageHeight: imageHeight,
		FrameWidth: frameWidth, FrameHeight: frameHeight,
	}
}

// NewFromFile returns a perturbation whose per-feature slack was read
// from an external file rather than derived from a single magnitude — the
// supplemented variant letting a dataset curator hand-tune per-feature
// sensitivity.
func NewFromFile(epsilonL, epsilonU []float64) Perturbation {
	return Perturbation{Kind: FromFile, EpsilonL: epsilonL, EpsilonU: epsilonU}
}
