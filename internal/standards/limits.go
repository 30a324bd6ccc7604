package standards

// MaxAspectRatio is the economical fabrication ceiling for rectangular
// ducts, SMACNA HVAC Duct Construction Standards (3rd ed.).
const MaxAspectRatio = 4.0

// VelocityLimit is a recommended duct velocity band in fpm.
type VelocityLimit struct {
	MinFPM float64 `json:"min_fpm"`
	MaxFPM float64 `json:"max_fpm"`
}

type limitKey struct {
	standard Standard
	class    DuctClass
	ductType DuctType
}

// Abridged duct velocity guidance. SMACNA rows follow the low-pressure
// commercial duct tables; ASHRAE rows follow the noise-driven
// recommendations of Fundamentals ch. 21 for occupied spaces.
var velocityLimits = map[limitKey]VelocityLimit{
	{SMACNA, ClassSupply, Round}:        {MinFPM: 500, MaxFPM: 2500},
	{SMACNA, ClassSupply, Rectangular}:  {MinFPM: 500, MaxFPM: 2000},
	{SMACNA, ClassReturn, Round}:        {MinFPM: 400, MaxFPM: 2000},
	{SMACNA, ClassReturn, Rectangular}:  {MinFPM: 400, MaxFPM: 1600},
	{SMACNA, ClassExhaust, Round}:       {MinFPM: 500, MaxFPM: 3000},
	{SMACNA, ClassExhaust, Rectangular}: {MinFPM: 500, MaxFPM: 2400},
	{ASHRAE, ClassSupply, Round}:        {MinFPM: 400, MaxFPM: 1800},
	{ASHRAE, ClassSupply, Rectangular}:  {MinFPM: 400, MaxFPM: 1500},
	{ASHRAE, ClassReturn, Round}:        {MinFPM: 300, MaxFPM: 1500},
	{ASHRAE, ClassReturn, Rectangular}:  {MinFPM: 300, MaxFPM: 1300},
	{ASHRAE, ClassExhaust, Round}:       {MinFPM: 400, MaxFPM: 2000},
	{ASHRAE, ClassExhaust, Rectangular}: {MinFPM: 400, MaxFPM: 1700},
}

// VelocityLimitFor returns the velocity band for a standard, duct class
// and shape. Unknown classes fall back to supply; unknown shapes fall
// back to round.
func VelocityLimitFor(std Standard, class DuctClass, dt DuctType) VelocityLimit {
	if !ValidDuctClass(class) {
		class = ClassSupply
	}
	if !ValidDuctType(dt) {
		dt = Round
	}
	if lim, ok := velocityLimits[limitKey{std, class, dt}]; ok {
		return lim
	}
	return velocityLimits[limitKey{SMACNA, class, dt}]
}
