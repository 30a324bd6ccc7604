package standards

// DefaultMaterial is assumed when a request names no duct material.
const DefaultMaterial = "galvanized_steel"

// Material is a duct construction material with its ASHRAE roughness
// category and the friction correction applied to the galvanized
// friction-chart baseline.
type Material struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Roughness string  `json:"roughness_category"`
	Factor    float64 `json:"friction_factor"`
}

// Materials lists the supported duct materials. Factors are relative to
// new galvanized steel, the medium-smooth basis of the friction chart
// (ASHRAE Fundamentals ch. 21, absolute roughness categories).
var Materials = []Material{
	{Key: "galvanized_steel", Name: "Galvanized steel", Roughness: "medium smooth", Factor: 1.00},
	{Key: "aluminum", Name: "Aluminum", Roughness: "smooth", Factor: 0.95},
	{Key: "stainless_steel", Name: "Stainless steel", Roughness: "smooth", Factor: 0.95},
	{Key: "pvc", Name: "PVC and rigid plastic", Roughness: "smooth", Factor: 0.90},
	{Key: "duct_board", Name: "Fibrous glass duct board", Roughness: "medium rough", Factor: 1.35},
	{Key: "flex_stretched", Name: "Flexible duct, fully stretched", Roughness: "rough", Factor: 1.50},
	{Key: "flex_compressed", Name: "Flexible duct, 30% compressed", Roughness: "rough", Factor: 2.90},
}

// RoughnessFactor returns the friction correction for a material key. The
// second return is false for unknown keys; callers treat that as the
// galvanized baseline and attach a warning.
func RoughnessFactor(key string) (float64, bool) {
	for _, m := range Materials {
		if m.Key == key {
			return m.Factor, true
		}
	}
	return 1.0, false
}

// MaterialByKey returns the full material row for a key.
func MaterialByKey(key string) (Material, bool) {
	for _, m := range Materials {
		if m.Key == key {
			return m, true
		}
	}
	return Material{}, false
}
