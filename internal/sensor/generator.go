package sensor

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// DeviceID is reported in every full reading.
const DeviceID = "ESP32_MOCK_001"

// TimestampLayout renders local time the way the ESP32 firmware does:
// ISO-8601 with microseconds and no zone suffix.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Range is a closed interval of sensor values.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// Draw ranges for each simulated sensor.
var (
	TemperatureRange  = Range{Min: 18.0, Max: 28.0}
	HumidityRange     = Range{Min: 40.0, Max: 70.0}
	LightRange        = Range{Min: 200, Max: 1000}
	SoilMoistureRange = Range{Min: 30.0, Max: 80.0}
)

// Mood is the illustrative plant mood attached to a full reading.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

// Moods lists every mood a reading can carry.
var Moods = []Mood{MoodHappy, MoodNeutral, MoodSad}

// Reading is one snapshot of all sensors.
type Reading struct {
	Time         time.Time
	Temperature  float64
	Humidity     float64
	Light        int
	SoilMoisture float64
	Mood         Mood
}

// Source produces independent sensor draws.
type Source interface {
	Temperature() float64
	Humidity() float64
	Light() int
	SoilMoisture() float64
	Mood() Mood
	Now() time.Time
}

// Generator draws uniformly distributed readings. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a Generator seeded from the runtime's entropy.
func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewGeneratorWithSource returns a Generator drawing from src.
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{
		rng: rand.New(src),
		now: time.Now,
	}
}

// Temperature returns a draw in TemperatureRange with one decimal.
func (g *Generator) Temperature() float64 {
	return g.uniform(TemperatureRange)
}

// Humidity returns a draw in HumidityRange with one decimal.
func (g *Generator) Humidity() float64 {
	return g.uniform(HumidityRange)
}

// Light returns an integer draw in LightRange, both ends included.
func (g *Generator) Light() int {
	lo, hi := int(LightRange.Min), int(LightRange.Max)
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.IntN(hi-lo+1)
}

// SoilMoisture returns a draw in SoilMoistureRange with one decimal.
func (g *Generator) SoilMoisture() float64 {
	return g.uniform(SoilMoistureRange)
}

func (g *Generator) Mood() Mood {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Moods[g.rng.IntN(len(Moods))]
}

func (g *Generator) Now() time.Time {
	return g.now()
}

func (g *Generator) uniform(r Range) float64 {
	g.mu.Lock()
	v := r.Min + g.rng.Float64()*(r.Max-r.Min)
	g.mu.Unlock()
	return roundTenth(v)
}

// Sample draws every sensor from src once.
func Sample(src Source) Reading {
	return Reading{
		Time:         src.Now(),
		Temperature:  src.Temperature(),
		Humidity:     src.Humidity(),
		Light:        src.Light(),
		SoilMoisture: src.SoilMoisture(),
		Mood:         src.Mood(),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
