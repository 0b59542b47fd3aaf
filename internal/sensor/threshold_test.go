package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		min, max float64
		want     Recommendation
	}{
		{"inside band", 22.5, 20, 25, Ideal},
		{"lower edge is ideal", 20, 20, 25, Ideal},
		{"upper edge is ideal", 25, 20, 25, Ideal},
		{"just below", 19.9, 20, 25, Increase},
		{"just above", 25.1, 20, 25, Decrease},
		{"far below", -40, 20, 25, Increase},
		{"far above", 1e9, 20, 25, Decrease},
		{"degenerate band", 5, 5, 5, Ideal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.value, tc.min, tc.max))
		})
	}
}

func TestRange_ClassifyUsesFixedBands(t *testing.T) {
	assert.Equal(t, Increase, TemperatureOptimal.Classify(19.9))
	assert.Equal(t, Ideal, TemperatureOptimal.Classify(20.0))
	assert.Equal(t, Decrease, TemperatureOptimal.Classify(25.1))

	assert.Equal(t, Increase, LightOptimal.Classify(399))
	assert.Equal(t, Ideal, LightOptimal.Classify(800))
	assert.Equal(t, Decrease, LightOptimal.Classify(801))

	assert.Equal(t, Increase, SoilMoistureOptimal.Classify(49.9))
	assert.Equal(t, Ideal, SoilMoistureOptimal.Classify(70))
	assert.Equal(t, Decrease, SoilMoistureOptimal.Classify(70.1))
}

func TestDescribeLight(t *testing.T) {
	assert.Equal(t, Dark, DescribeLight(200))
	assert.Equal(t, Dark, DescribeLight(500))
	assert.Equal(t, Bright, DescribeLight(501))
	assert.Equal(t, Bright, DescribeLight(1000))
}
