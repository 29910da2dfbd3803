package analysis

import "gonum.org/v1/gonum/stat"

// DriftSlope fits drift = a + b*t by unweighted least squares and
// returns the slope b. Euler's energy drift on a conservative system
// grows roughly linearly in elapsed time for a fixed step size, so the
// slope is a compact figure for comparing step sizes.
func DriftSlope(times, drift []float64) float64 {
	_, slope := stat.LinearRegression(times, drift, nil, false)
	return slope
}

// DriftFit returns the least-squares slope together with R^2, a check
// on how linear the growth actually was.
func DriftFit(times, drift []float64) (slope, r2 float64) {
	alpha, beta := stat.LinearRegression(times, drift, nil, false)
	est := make([]float64, len(times))
	for i, t := range times {
		est[i] = alpha + beta*t
	}
	return beta, stat.RSquaredFrom(est, drift, nil)
}
