package fittings

import "Plenum/internal/standards"

// Built-in coefficient set, abridged from the SMACNA duct design tables
// and the ASHRAE Fundamentals fitting database. Parameters are stored as
// the exact strings the tables publish; the resolver matches them
// literally, it does not interpolate.

var defaultMeta = Metadata{
	Standard: "SMACNA/ASHRAE",
	Source:   "SMACNA HVAC Systems Duct Design (4th ed.), ASHRAE Fundamentals ch. 21 (abridged)",
	Version:  "2025.1",
}

var defaultTypes = []FittingType{
	// Round fittings.
	{
		Key: "90deg_round_smooth", Shape: standards.Round, Family: FamilyElbow,
		Label: "90 deg smooth radius elbow", ParamName: "R/D", DefaultParam: "1.0",
		Advisory: Advisory{SharpRadiusMax: 0.5},
	},
	{
		Key: "45deg_round_smooth", Shape: standards.Round, Family: FamilyElbow,
		Label: "45 deg smooth radius elbow", ParamName: "R/D", DefaultParam: "1.0",
		Advisory: Advisory{SharpRadiusMax: 0.5},
	},
	{
		Key: "90deg_round_mitered", Shape: standards.Round, Family: FamilyMiter,
		Label: "90 deg mitered elbow", DefaultSub: "single_gore",
	},
	{
		Key: "45deg_round_mitered", Shape: standards.Round, Family: FamilyMiter,
		Label: "45 deg mitered elbow",
	},
	{
		Key: "tee_round_branch", Shape: standards.Round, Family: FamilyTee,
		Label: "Tee, branch takeoff", ParamName: "Ab/Ac", DefaultParam: "0.5",
		Advisory: Advisory{BranchRatioMin: 0.75},
	},
	{
		Key: "tee_round_straight", Shape: standards.Round, Family: FamilyTee,
		Label: "Tee, straight-through run", ParamName: "Ab/Ac", DefaultParam: "0.5",
	},
	{
		Key: "wye_45_round", Shape: standards.Round, Family: FamilyTee,
		Label: "45 deg wye, branch", ParamName: "Ab/Ac", DefaultParam: "0.5",
		Advisory: Advisory{BranchRatioMin: 0.75},
	},
	{
		Key: "transition_round", Shape: standards.Round, Family: FamilyTransition,
		Label: "Round transition", ParamName: "L/D", DefaultSub: "expansion", DefaultParam: "1.0",
		Advisory: Advisory{ShortLengthMin: 1.0},
	},
	{
		Key: "damper_butterfly_round", Shape: standards.Round, Family: FamilyDamper,
		Label: "Butterfly damper", ParamName: "blade angle", DefaultParam: "0",
		Advisory: Advisory{RestrictiveDeg: 45},
	},
	{
		Key: "duct_entry_round", Shape: standards.Round, Family: FamilyEntry,
		Label: "Duct entry", DefaultSub: "plain",
	},
	{
		Key: "duct_exit_round", Shape: standards.Round, Family: FamilyExit,
		Label: "Duct exit",
	},

	// Rectangular fittings.
	{
		Key: "90deg_rect_smooth", Shape: standards.Rectangular, Family: FamilyElbow,
		Label: "90 deg smooth radius elbow", ParamName: "R/W", DefaultParam: "1.0",
		Advisory: Advisory{SharpRadiusMax: 0.5},
	},
	{
		Key: "45deg_rect_smooth", Shape: standards.Rectangular, Family: FamilyElbow,
		Label: "45 deg smooth radius elbow", ParamName: "R/W", DefaultParam: "1.0",
		Advisory: Advisory{SharpRadiusMax: 0.5},
	},
	{
		Key: "90deg_rect_mitered", Shape: standards.Rectangular, Family: FamilyMiter,
		Label: "90 deg mitered elbow", DefaultSub: "no_vanes",
	},
	{
		Key: "tee_rect_branch", Shape: standards.Rectangular, Family: FamilyTee,
		Label: "Tee, branch takeoff", ParamName: "Ab/Ac", DefaultParam: "0.5",
		Advisory: Advisory{BranchRatioMin: 0.75},
	},
	{
		Key: "tee_rect_straight", Shape: standards.Rectangular, Family: FamilyTee,
		Label: "Tee, straight-through run", ParamName: "Ab/Ac", DefaultParam: "0.5",
	},
	{
		Key: "transition_rect", Shape: standards.Rectangular, Family: FamilyTransition,
		Label: "Rectangular transition", ParamName: "L/D", DefaultSub: "expansion", DefaultParam: "1.0",
		Advisory: Advisory{ShortLengthMin: 1.0},
	},
	{
		Key: "damper_parallel_rect", Shape: standards.Rectangular, Family: FamilyDamper,
		Label: "Parallel blade damper", ParamName: "blade angle", DefaultParam: "0",
		Advisory: Advisory{RestrictiveDeg: 45},
	},
	{
		Key: "damper_opposed_rect", Shape: standards.Rectangular, Family: FamilyDamper,
		Label: "Opposed blade damper", ParamName: "blade angle", DefaultParam: "0",
		Advisory: Advisory{RestrictiveDeg: 45},
	},
	{
		Key: "duct_entry_rect", Shape: standards.Rectangular, Family: FamilyEntry,
		Label: "Duct entry", DefaultSub: "plain",
	},
	{
		Key: "duct_exit_rect", Shape: standards.Rectangular, Family: FamilyExit,
		Label: "Duct exit",
	},
}

var defaultCoeffs = []Coefficient{
	// 90 deg smooth radius elbow, round, by centerline radius ratio.
	{Fitting: "90deg_round_smooth", Parameter: "0.5", K: 0.60},
	{Fitting: "90deg_round_smooth", Parameter: "0.75", K: 0.37},
	{Fitting: "90deg_round_smooth", Parameter: "1.0", K: 0.25},
	{Fitting: "90deg_round_smooth", Parameter: "1.5", K: 0.15},
	{Fitting: "90deg_round_smooth", Parameter: "2.0", K: 0.11},

	// 45 deg smooth radius elbow, round.
	{Fitting: "45deg_round_smooth", Parameter: "0.5", K: 0.34},
	{Fitting: "45deg_round_smooth", Parameter: "1.0", K: 0.13},
	{Fitting: "45deg_round_smooth", Parameter: "1.5", K: 0.08},

	// Mitered round elbows, by gore count.
	{Fitting: "90deg_round_mitered", Subtype: "single_gore", K: 1.20},
	{Fitting: "90deg_round_mitered", Subtype: "three_gore", K: 0.50},
	{Fitting: "90deg_round_mitered", Subtype: "five_gore", K: 0.33},
	{Fitting: "45deg_round_mitered", K: 0.34},

	// Round tee and wye, by branch-to-common area ratio.
	{Fitting: "tee_round_branch", Parameter: "0.25", K: 1.00},
	{Fitting: "tee_round_branch", Parameter: "0.5", K: 0.80},
	{Fitting: "tee_round_branch", Parameter: "0.75", K: 0.70},
	{Fitting: "tee_round_branch", Parameter: "1.0", K: 0.65},
	{Fitting: "tee_round_straight", Parameter: "0.25", K: 0.30},
	{Fitting: "tee_round_straight", Parameter: "0.5", K: 0.20},
	{Fitting: "tee_round_straight", Parameter: "0.75", K: 0.15},
	{Fitting: "tee_round_straight", Parameter: "1.0", K: 0.10},
	{Fitting: "wye_45_round", Parameter: "0.25", K: 0.60},
	{Fitting: "wye_45_round", Parameter: "0.5", K: 0.50},
	{Fitting: "wye_45_round", Parameter: "0.75", K: 0.42},
	{Fitting: "wye_45_round", Parameter: "1.0", K: 0.38},

	// Round transitions, by length-to-diameter ratio.
	{Fitting: "transition_round", Subtype: "expansion", Parameter: "0.5", K: 0.60},
	{Fitting: "transition_round", Subtype: "expansion", Parameter: "1.0", K: 0.35},
	{Fitting: "transition_round", Subtype: "expansion", Parameter: "1.5", K: 0.22},
	{Fitting: "transition_round", Subtype: "expansion", Parameter: "2.0", K: 0.15},
	{Fitting: "transition_round", Subtype: "contraction", Parameter: "0.5", K: 0.10},
	{Fitting: "transition_round", Subtype: "contraction", Parameter: "1.0", K: 0.06},
	{Fitting: "transition_round", Subtype: "contraction", Parameter: "1.5", K: 0.05},
	{Fitting: "transition_round", Subtype: "contraction", Parameter: "2.0", K: 0.04},

	// Butterfly damper, by blade angle in degrees from open.
	{Fitting: "damper_butterfly_round", Parameter: "0", K: 0.20},
	{Fitting: "damper_butterfly_round", Parameter: "15", K: 0.90},
	{Fitting: "damper_butterfly_round", Parameter: "30", K: 3.91},
	{Fitting: "damper_butterfly_round", Parameter: "45", K: 18.7},
	{Fitting: "damper_butterfly_round", Parameter: "60", K: 118},

	// Round entries and exit.
	{Fitting: "duct_entry_round", Subtype: "plain", K: 0.50},
	{Fitting: "duct_entry_round", Subtype: "bellmouth", K: 0.03},
	{Fitting: "duct_entry_round", Subtype: "conical", K: 0.20},
	{Fitting: "duct_exit_round", K: 1.00},

	// 90 deg smooth radius elbow, rectangular, by radius-to-width ratio.
	{Fitting: "90deg_rect_smooth", Parameter: "0.5", K: 1.30},
	{Fitting: "90deg_rect_smooth", Parameter: "0.75", K: 0.47},
	{Fitting: "90deg_rect_smooth", Parameter: "1.0", K: 0.22},
	{Fitting: "90deg_rect_smooth", Parameter: "1.5", K: 0.15},
	{Fitting: "90deg_rect_smooth", Parameter: "2.0", K: 0.13},

	// 45 deg smooth radius elbow, rectangular.
	{Fitting: "45deg_rect_smooth", Parameter: "0.5", K: 0.65},
	{Fitting: "45deg_rect_smooth", Parameter: "1.0", K: 0.18},
	{Fitting: "45deg_rect_smooth", Parameter: "1.5", K: 0.12},

	// Mitered rectangular elbow, by vane arrangement.
	{Fitting: "90deg_rect_mitered", Subtype: "no_vanes", K: 1.25},
	{Fitting: "90deg_rect_mitered", Subtype: "single_vanes", K: 0.35},
	{Fitting: "90deg_rect_mitered", Subtype: "double_vanes", K: 0.11},

	// Rectangular tee, by branch-to-common area ratio.
	{Fitting: "tee_rect_branch", Parameter: "0.25", K: 1.20},
	{Fitting: "tee_rect_branch", Parameter: "0.5", K: 0.90},
	{Fitting: "tee_rect_branch", Parameter: "0.75", K: 0.80},
	{Fitting: "tee_rect_branch", Parameter: "1.0", K: 0.75},
	{Fitting: "tee_rect_straight", Parameter: "0.25", K: 0.35},
	{Fitting: "tee_rect_straight", Parameter: "0.5", K: 0.25},
	{Fitting: "tee_rect_straight", Parameter: "0.75", K: 0.20},
	{Fitting: "tee_rect_straight", Parameter: "1.0", K: 0.15},

	// Rectangular transitions.
	{Fitting: "transition_rect", Subtype: "expansion", Parameter: "0.5", K: 0.70},
	{Fitting: "transition_rect", Subtype: "expansion", Parameter: "1.0", K: 0.40},
	{Fitting: "transition_rect", Subtype: "expansion", Parameter: "1.5", K: 0.25},
	{Fitting: "transition_rect", Subtype: "expansion", Parameter: "2.0", K: 0.18},
	{Fitting: "transition_rect", Subtype: "contraction", Parameter: "0.5", K: 0.12},
	{Fitting: "transition_rect", Subtype: "contraction", Parameter: "1.0", K: 0.08},
	{Fitting: "transition_rect", Subtype: "contraction", Parameter: "1.5", K: 0.06},
	{Fitting: "transition_rect", Subtype: "contraction", Parameter: "2.0", K: 0.05},

	// Multi-blade dampers, by blade angle in degrees from open.
	{Fitting: "damper_parallel_rect", Parameter: "0", K: 0.52},
	{Fitting: "damper_parallel_rect", Parameter: "15", K: 1.50},
	{Fitting: "damper_parallel_rect", Parameter: "30", K: 4.50},
	{Fitting: "damper_parallel_rect", Parameter: "45", K: 17.0},
	{Fitting: "damper_parallel_rect", Parameter: "60", K: 95.0},
	{Fitting: "damper_opposed_rect", Parameter: "0", K: 0.52},
	{Fitting: "damper_opposed_rect", Parameter: "15", K: 2.50},
	{Fitting: "damper_opposed_rect", Parameter: "30", K: 9.00},
	{Fitting: "damper_opposed_rect", Parameter: "45", K: 38.0},
	{Fitting: "damper_opposed_rect", Parameter: "60", K: 220.0},

	// Rectangular entries and exit.
	{Fitting: "duct_entry_rect", Subtype: "plain", K: 0.50},
	{Fitting: "duct_entry_rect", Subtype: "rounded", K: 0.20},
	{Fitting: "duct_exit_rect", K: 1.00},
}

// DefaultTable returns the built-in coefficient set. The data above is
// checked at construction; a violation is a programming error, so this
// panics rather than returning one.
func DefaultTable() *Table {
	t, err := newTable(defaultMeta, defaultTypes, defaultCoeffs)
	if err != nil {
		panic("fittings: built-in coefficient table invalid: " + err.Error())
	}
	return t
}
