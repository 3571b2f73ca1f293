package game

import (
	"math"
	"slices"
)

// Sum ...
func Sum(data []float64) (result float64) {
	for _, v := range data {
		result += v
	}
	return result
}

// Mean ...
func Mean(data []float64) float64 {
	count := float64(len(data))
	if count == 0 {
		return 0
	}
	return Sum(data) / count
}

// Max returns the largest value of data, or 0 if data is empty.
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return slices.Max(data)
}

// Median returns the median of data. data is not modified.
func Median(data []float64) float64 {
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	return sortedMedian(sorted)
}

func sortedMedian(sorted []float64) float64 {
	count := len(sorted)
	if count == 0 {
		return 0
	}
	if count%2 != 0 {
		return sorted[count/2]
	}
	return (sorted[count/2-1] + sorted[count/2]) * 0.5
}

// Variance returns the population variance of data.
func Variance(data []float64) (variance float64) {
	count := float64(len(data))
	if count == 0 {
		return 0
	}
	mean := Sum(data) / count

	for _, number := range data {
		variance += (number - mean) * (number - mean)
	}
	return variance / count
}

// StandardDeviation ...
func StandardDeviation(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// Outliers counts the values of data outside 1.5 interquartile ranges around the quartiles.
func Outliers(data []float64) int {
	if len(data) < 4 {
		return 0
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	half := len(sorted) / 2
	q1 := sortedMedian(sorted[:half])
	q3 := sortedMedian(sorted[len(sorted)-half:])

	iqr := q3 - q1
	low, high := q1-1.5*iqr, q3+1.5*iqr

	var n int
	for _, v := range sorted {
		if v < low || v > high {
			n++
		}
	}
	return n
}
