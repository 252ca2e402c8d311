package descent

import (
	"encoding/json"
	"fmt"
	"io"
)

// StepReport records the state after one update step. Step 0 is the
// starting point.
type StepReport struct {
	Step  int     `json:"step"`
	X     float64 `json:"x"`
	Value float64 `json:"value"`
	Deriv float64 `json:"deriv"`
}

// Report summarizes an entire run.
type Report struct {
	Target    string       `json:"target"`
	Formula   string       `json:"formula"`
	Maximize  bool         `json:"maximize"`
	Config    Config       `json:"config"`
	Nodes     int          `json:"nodes"`
	Depth     int          `json:"depth"`
	Steps     []StepReport `json:"steps,omitempty"`
	StepsUsed int          `json:"steps_used"`
	Converged bool         `json:"converged"`
	X         float64      `json:"x"`
	Value     float64      `json:"value"`
	Deriv     float64      `json:"deriv"`
}

// WriteTextStep writes one step in human-readable format.
func WriteTextStep(w io.Writer, s StepReport) {
	fmt.Fprintf(w, "Step %4d | x: %-14.9g | f(x): %-14.9g | f'(x): %.9g\n",
		s.Step, s.X, s.Value, s.Deriv)
}

// WriteTextFinal writes the final report in human-readable format.
func WriteTextFinal(w io.Writer, r Report) {
	if len(r.Steps) > 0 {
		for _, s := range r.Steps {
			WriteTextStep(w, s)
		}
		fmt.Fprintln(w)
	}
	mode := "minimize"
	if r.Maximize {
		mode = "maximize"
	}
	fmt.Fprintln(w, "========== RESULT ==========")
	fmt.Fprintf(w, "Target:    %s (%s)\n", r.Target, mode)
	fmt.Fprintf(w, "Formula:   %s\n", r.Formula)
	fmt.Fprintf(w, "Tree:      %d nodes, depth %d\n", r.Nodes, r.Depth)
	fmt.Fprintf(w, "Steps:     %d of %d (converged: %v)\n", r.StepsUsed, r.Config.Steps, r.Converged)
	fmt.Fprintf(w, "x:         %.9g\n", r.X)
	fmt.Fprintf(w, "f(x):      %.9g\n", r.Value)
	fmt.Fprintf(w, "f'(x):     %.9g\n", r.Deriv)
	fmt.Fprintln(w, "============================")
}

// WriteJSONFinal writes the final report as JSON.
func WriteJSONFinal(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
