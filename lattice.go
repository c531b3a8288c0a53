package helix

import "math"

// HelixColors are the three colors of the helix lattice.
type HelixColors struct {
	StrandA RGBA
	StrandB RGBA
	Rung    RGBA
}

// helixWave describes the shared sine wave of both strands.
type helixWave struct {
	width, centerY, amplitude, turns float64
}

func newHelixWave(width, height float64, num Numerology) helixWave {
	return helixWave{
		width:     width,
		centerY:   height / 2,
		amplitude: height / float64(num.Nine),
		turns:     float64(num.Eleven),
	}
}

// at returns the strand point at parameter t in [0, 1] with the given phase.
func (w helixWave) at(t, phase float64) Point {
	return Pt(t*w.width, w.centerY+math.Sin(t*w.turns*2*math.Pi+phase)*w.amplitude)
}

// HelixStrand samples one strand of the lattice: NINETYNINE+1 points across
// the full width. Strand B is strand A shifted by phase π.
func HelixStrand(width, height, phase float64, num Numerology) []Point {
	wave := newHelixWave(width, height, num)
	steps := num.NinetyNine

	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, wave.at(float64(i)/float64(steps), phase))
	}
	return pts
}

// strand draws one strand as a polyline of steps segments.
func (w helixWave) strand(s Surface, steps int, phase float64) error {
	return polyline(s, steps, func(i int) Point {
		return w.at(float64(i)/float64(steps), phase)
	})
}

// DrawHelixLattice strokes two phase-shifted sine strands (width 2) and
// THIRTYTHREE+1 evenly spaced rungs between them (width 1).
func DrawHelixLattice(s Surface, width, height float64, colors HelixColors, num Numerology) error {
	wave := newHelixWave(width, height, num)
	steps := num.NinetyNine
	rungs := num.ThirtyThree

	return isolate(s, func() error {
		s.SetAlpha(HelixAlpha)
		s.SetLineWidth(2)

		s.SetStrokeColor(colors.StrandA)
		if err := wave.strand(s, steps, 0); err != nil {
			return err
		}
		s.SetStrokeColor(colors.StrandB)
		if err := wave.strand(s, steps, math.Pi); err != nil {
			return err
		}

		s.SetStrokeColor(colors.Rung)
		s.SetLineWidth(1)
		for i := 0; i <= rungs; i++ {
			t := float64(i) / float64(rungs)
			a, b := wave.at(t, 0), wave.at(t, math.Pi)
			s.BeginPath()
			s.MoveTo(a.X, a.Y)
			s.LineTo(b.X, b.Y)
			if err := s.Stroke(); err != nil {
				return err
			}
		}
		return nil
	})
}
