package helix

import "math"

// spiral describes the Fibonacci spiral for one surface size.
type spiral struct {
	center  Point
	scale   float64
	turns   float64
	samples int
}

func newSpiral(width, height float64, num Numerology) spiral {
	return spiral{
		center:  Pt(width/2, height/2),
		scale:   math.Min(width, height) / float64(num.ThirtyThree),
		turns:   float64(num.Eleven),
		samples: num.OneFortyFour,
	}
}

// at returns sample i in 0..samples. The radius grows by the golden ratio
// every full turn; y grows downward, so the spiral turns counterclockwise
// on screen.
func (sp spiral) at(i int) Point {
	theta := float64(i) / float64(sp.samples) * sp.turns * math.Pi
	radius := sp.scale * math.Pow(math.Phi, theta/(2*math.Pi))
	return sp.center.Add(Pt(math.Cos(theta), -math.Sin(theta)).Mul(radius))
}

// SpiralPoints samples the Fibonacci spiral: ONEFORTYFOUR+1 points over
// ELEVEN half turns, centered on the surface.
func SpiralPoints(width, height float64, num Numerology) []Point {
	sp := newSpiral(width, height, num)
	pts := make([]Point, 0, sp.samples+1)
	for i := 0; i <= sp.samples; i++ {
		pts = append(pts, sp.at(i))
	}
	return pts
}

// DrawFibonacciSpiral strokes the spiral as a single polyline of width 2.
func DrawFibonacciSpiral(s Surface, width, height float64, color RGBA, num Numerology) error {
	sp := newSpiral(width, height, num)

	return isolate(s, func() error {
		s.SetStrokeColor(color)
		s.SetLineWidth(2)
		s.SetAlpha(SpiralAlpha)
		return polyline(s, sp.samples, sp.at)
	})
}
