// ABOUTME: Guided session protocols for A-days and B-days.
// ABOUTME: A-days follow a 4-step invitation protocol, B-days a 3-step baseline.
package models

// Step is one titled step of a guided session.
type Step struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var (
	stepSafety = Step{
		Title: "Safety & Kedushah",
		Body:  "Settle yourself. Recite a short protective prayer (e.g., Kriat Shema) asking that only truth and goodness come forward.",
	}
	stepAlignment = Step{
		Title: "Tiferet Alignment",
		Body:  "Focus on your heart center. Breathe slowly (inhale 4, exhale 6-8), repeating a word like \"emet\" on each inhale until you feel present and humble.",
	}
	stepInvitation = Step{
		Title: "Invitation",
		Body:  "\"If there are beings permitted to help me toward purity and wholeness, I am open to receiving help in a way aligned with truth and goodness.\" Then rest in silence.",
	}
	stepClosing = Step{
		Title: "Closing & Integration",
		Body:  "Thank whatever has arisen. Seal the session: \"This session is complete. Only what serves truth and goodness remains.\" Ground yourself by noticing your body and surroundings.",
	}
	stepBaseline = Step{
		Title: "Baseline & Closing",
		Body:  "Rest quietly and continue focusing on the breath. No invitation is extended on baseline days. When ready, seal the session and ground yourself by noticing your body and surroundings.",
	}
)

// Instructions returns the guided steps for a day type.
// Unknown day types get the baseline protocol.
func Instructions(d DayType) []Step {
	if d == DayTypeA {
		return []Step{stepSafety, stepAlignment, stepInvitation, stepClosing}
	}
	return []Step{stepSafety, stepAlignment, stepBaseline}
}
