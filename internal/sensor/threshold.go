package sensor

// Recommendation tells the grower which way to move a metric.
type Recommendation string

const (
	Ideal    Recommendation = "ideal"
	Increase Recommendation = "increase"
	Decrease Recommendation = "decrease"
)

// Optimal bands used by the device API.
var (
	TemperatureOptimal  = Range{Min: 20, Max: 25}
	LightOptimal        = Range{Min: 400, Max: 800}
	SoilMoistureOptimal = Range{Min: 50, Max: 70}
)

// Classify compares value against the inclusive band [optimalMin, optimalMax].
func Classify(value, optimalMin, optimalMax float64) Recommendation {
	switch {
	case optimalMin <= value && value <= optimalMax:
		return Ideal
	case value < optimalMin:
		return Increase
	default:
		return Decrease
	}
}

// Classify compares value against the band r.
func (r Range) Classify(value float64) Recommendation {
	return Classify(value, r.Min, r.Max)
}

// LightDescription is the coarse brightness label for a light reading.
type LightDescription string

const (
	Bright LightDescription = "bright"
	Dark   LightDescription = "dark"
)

// BrightAbove is the light level above which the room counts as bright.
const BrightAbove = 500

func DescribeLight(light int) LightDescription {
	if light > BrightAbove {
		return Bright
	}
	return Dark
}
