package fittings

import (
	"Plenum/internal/calc/airflow"
	"Plenum/internal/standards"
)

// Calculator computes fitting and system pressure losses against an
// injected coefficient table.
type Calculator struct {
	table *Table
}

// NewCalculator wraps a coefficient table. A nil table means the built-in
// set.
func NewCalculator(t *Table) *Calculator {
	if t == nil {
		t = DefaultTable()
	}
	return &Calculator{table: t}
}

// Table returns the coefficient table in use.
func (c *Calculator) Table() *Table { return c.table }

// LossResult is the outcome for a single fitting. Every figure is
// recomputed on each call; nothing is cached between requests.
type LossResult struct {
	FittingType      string   `json:"fitting_type"`
	Configuration    string   `json:"configuration"`
	KFactor          float64  `json:"k_factor"`
	VelocityFPM      float64  `json:"velocity_fpm"`
	VelocityPressure float64  `json:"velocity_pressure_inwg"`
	PressureLoss     float64  `json:"pressure_loss_inwg"`
	Warnings         []string `json:"warnings"`
	Recommendations  []string `json:"recommendations"`
}

// SystemResult aggregates a series run of fittings sharing one airflow.
type SystemResult struct {
	TotalPressureLoss float64      `json:"total_pressure_loss_inwg"`
	Fittings          []LossResult `json:"fittings"`
}

func configArea(cfg Config) (float64, error) {
	switch cfg.Shape {
	case standards.Rectangular:
		if cfg.WidthIn <= 0 || cfg.HeightIn <= 0 {
			return 0, airflow.Validationf("Rectangular fittings need a positive width and height")
		}
		return airflow.RectArea(cfg.WidthIn, cfg.HeightIn), nil
	case standards.Round, "":
		if cfg.DiameterIn <= 0 {
			return 0, airflow.Validationf("Round fittings need a positive diameter")
		}
		return airflow.RoundArea(cfg.DiameterIn), nil
	default:
		return 0, airflow.Validationf("Duct shape must be %q or %q",
			standards.Round, standards.Rectangular)
	}
}

// FittingLoss computes the pressure loss through one fitting at the given
// airflow. The velocity comes from the fitting's own cross-section, so a
// transition is evaluated at its upstream size.
func (c *Calculator) FittingLoss(cfg Config, airflowCFM float64) (LossResult, error) {
	area, err := configArea(cfg)
	if err != nil {
		return LossResult{}, err
	}
	vel, err := airflow.Velocity(airflowCFM, area)
	if err != nil {
		return LossResult{}, err
	}
	vp := airflow.VelocityPressure(vel)

	res := c.table.ResolveK(cfg)
	return LossResult{
		FittingType:      cfg.Type,
		Configuration:    res.Label,
		KFactor:          res.KFactor,
		VelocityFPM:      vel,
		VelocityPressure: vp,
		PressureLoss:     res.KFactor * vp,
		Warnings:         res.Warnings,
		Recommendations:  res.Recommendations,
	}, nil
}

// SystemLoss evaluates a series path of fittings at one shared airflow
// and sums the individual losses. Result order matches input order.
func (c *Calculator) SystemLoss(cfgs []Config, airflowCFM float64) (SystemResult, error) {
	if len(cfgs) == 0 {
		return SystemResult{}, airflow.Validationf("At least one fitting is required")
	}
	out := SystemResult{Fittings: make([]LossResult, 0, len(cfgs))}
	for _, cfg := range cfgs {
		r, err := c.FittingLoss(cfg, airflowCFM)
		if err != nil {
			return SystemResult{}, err
		}
		out.Fittings = append(out.Fittings, r)
		out.TotalPressureLoss += r.PressureLoss
	}
	return out, nil
}
