package descent

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/wildfunctions/autodiff/pkg/expr"
	"github.com/wildfunctions/autodiff/pkg/preset"
)

// Engine runs a gradient descent (or ascent) on one target function, using
// the derivative that forward-mode evaluation yields at each step.
type Engine struct {
	cfg Config
	p   preset.Preset
	fn  expr.Expr
	log *slog.Logger
}

// New creates an engine from the given config.
func New(cfg Config) (*Engine, error) {
	p, err := preset.Get(cfg.Target)
	if err != nil {
		return nil, err
	}
	if cfg.Rate <= 0 {
		return nil, fmt.Errorf("rate must be positive, got %v", cfg.Rate)
	}
	if cfg.Steps <= 0 {
		return nil, fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		cfg: cfg,
		p:   p,
		fn:  p.Build(),
		log: logger,
	}, nil
}

// Run executes the update loop x <- x -/+ rate * f'(x) and returns the final
// report. The loop stops early once |f'(x)| falls under the tolerance, or if
// a step leaves the finite domain.
func (e *Engine) Run() Report {
	x := e.cfg.Start
	v, d := e.fn.Eval(x)

	report := Report{
		Target:   e.cfg.Target,
		Formula:  e.p.Formula,
		Maximize: e.p.Maximize,
		Config:   e.cfg,
		Nodes:    e.fn.NodeCount(),
		Depth:    e.fn.Depth(),
	}
	if e.cfg.Trace {
		report.Steps = append(report.Steps, StepReport{Step: 0, X: x, Value: v, Deriv: d})
	}

	steps := 0
	for ; steps < e.cfg.Steps; steps++ {
		if math.Abs(d) <= e.cfg.Tolerance {
			report.Converged = true
			break
		}
		if math.IsNaN(d) || math.IsInf(d, 0) {
			e.log.Warn("derivative left the finite domain, stopping",
				"step", steps, "x", x, "value", v, "deriv", d)
			break
		}

		if e.p.Maximize {
			x += e.cfg.Rate * d
		} else {
			x -= e.cfg.Rate * d
		}
		v, d = e.fn.Eval(x)

		if e.cfg.Trace {
			report.Steps = append(report.Steps, StepReport{Step: steps + 1, X: x, Value: v, Deriv: d})
		}
		if e.cfg.Verbose {
			e.log.Info("step", "n", steps+1, "x", x, "value", v, "deriv", d)
		}
	}

	report.StepsUsed = steps
	report.X = x
	report.Value = v
	report.Deriv = d
	return report
}
