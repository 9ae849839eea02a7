package fract

// escapeRadiusSq is the squared escape threshold. Once |x| > 2 the orbit of
// x <- x^2 + c is guaranteed to diverge, so the squared magnitude is compared
// against 4 to avoid a square root per step.
const escapeRadiusSq = 4.0

// EscapeIteration iterates x <- x^2 + c from x = 0 and returns the first
// iteration count at which |x| exceeds 2, or maxItr if the orbit stays
// bounded for the whole budget. The result is always in [0, maxItr].
func EscapeIteration(c complex128, maxItr int) int {
	var x complex128
	for k := 0; k < maxItr; k++ {
		x = x*x + c
		if real(x)*real(x)+imag(x)*imag(x) > escapeRadiusSq {
			return k
		}
	}
	return maxItr
}
