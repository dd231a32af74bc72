package util

import "math"

type Number interface {
	~int | ~int64 | ~float64
}

// CalculateAverage returns the arithmetic mean, or 0 for an empty list.
func CalculateAverage[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}

// CalculateStdDev returns the population standard deviation.
func CalculateStdDev[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := CalculateAverage(values)
	var squares float64
	for _, v := range values {
		d := float64(v) - mean
		squares += d * d
	}
	return math.Sqrt(squares / float64(len(values)))
}

// Round rounds half away from zero to the given number of decimals.
func Round(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(value*scale) / scale
}

// ClampMin returns value, or floor when value is below it.
func ClampMin[T Number](value, floor T) T {
	if value < floor {
		return floor
	}
	return value
}
