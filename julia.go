package fract

// JuliaIteration iterates x <- x^2 + c and returns the first iteration count
// at which |x| exceeds 2, or maxItr if the orbit stays bounded. Unlike the
// Mandelbrot kernel, the orbit starts at the sampled point x and c is a
// fixed parameter selecting which Julia set is drawn.
func JuliaIteration(x, c complex128, maxItr int) int {
	for k := 0; k < maxItr; k++ {
		x = x*x + c
		if real(x)*real(x)+imag(x)*imag(x) > escapeRadiusSq {
			return k
		}
	}
	return maxItr
}
