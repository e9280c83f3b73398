package models

import "math"

// TotalSteps is the number of screens in the quote form: six project
// questions, contact info, address, and the optional details screen.
const TotalSteps = 9

// FormSession is the progress state of one visitor working through the
// quote form. Only Data survives reloads; the rest is rebuilt.
type FormSession struct {
	Data        Lead              `json:"data"`
	CurrentStep int               `json:"currentStep"`
	TotalSteps  int               `json:"totalSteps"`
	Errors      map[string]string `json:"errors"`
	Submitting  bool              `json:"isSubmitting"`
	Complete    bool              `json:"isComplete"`
}

// NewFormSession returns a session at step 1 with an empty record.
func NewFormSession() FormSession {
	return FormSession{
		Data:        Lead{FencePurpose: []string{}},
		CurrentStep: 1,
		TotalSteps:  TotalSteps,
		Errors:      map[string]string{},
	}
}

// Progress is the display percentage for the step indicator.
func (s FormSession) Progress() int {
	return int(math.Round(float64(s.CurrentStep-1) / float64(s.TotalSteps) * 100))
}
