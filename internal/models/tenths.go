package models

import (
	"fmt"
	"math"
	"strconv"
)

// Tenths is a sensor value with one decimal place. It always encodes with
// the decimal, so 23 goes out as 23.0 and typed clients read a float.
type Tenths float64

func (t Tenths) MarshalJSON() ([]byte, error) {
	v := float64(t)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("unsupported reading %v", v)
	}
	return []byte(strconv.FormatFloat(v, 'f', 1, 64)), nil
}
