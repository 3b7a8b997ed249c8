package main

import (
	"fmt"
	"math"
	"strconv"
)

func isNonFinite(f float32) bool {
	f64 := float64(f)
	return math.IsNaN(f64) || math.IsInf(f64, 0)
}

// parseFinite parses a coordinate or multiplier value, rejecting NaN/±Inf.
func parseFinite(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	if v := float32(f); !isNonFinite(v) {
		return v, nil
	}
	return 0, fmt.Errorf("value must be finite: %q", s)
}
