package captions

// Timing of a caption line, in milliseconds.
const (
	LineDisplayDuration = 5000
	FadeInDuration      = 500
	FadeOutDuration     = 500
)

// Phase is the visibility state of a caption line.
type Phase int

const (
	PhaseInactive Phase = iota
	PhaseFadingIn
	PhaseVisible
	PhaseFadingOut
)

func (p Phase) String() string {
	switch p {
	case PhaseFadingIn:
		return "fading_in"
	case PhaseVisible:
		return "visible"
	case PhaseFadingOut:
		return "fading_out"
	default:
		return "inactive"
	}
}

// Envelope returns the opacity and phase of a line timeIntoLine milliseconds
// after its start. Opacity ramps 0→1 over the fade-in, holds at 1, then ramps
// 1→0 over the final fade-out.
func Envelope(timeIntoLine float64) (float64, Phase) {
	switch {
	case timeIntoLine < 0 || timeIntoLine >= LineDisplayDuration:
		return 0, PhaseInactive
	case timeIntoLine < FadeInDuration:
		return timeIntoLine / FadeInDuration, PhaseFadingIn
	case timeIntoLine < LineDisplayDuration-FadeOutDuration:
		return 1, PhaseVisible
	default:
		return (LineDisplayDuration - timeIntoLine) / FadeOutDuration, PhaseFadingOut
	}
}
