package helix

import "math"

// TreeNodes are the ten node positions of the Tree-of-Life scaffold in
// normalized surface coordinates (0..1 on both axes, y down).
var TreeNodes = [10]Point{
	{0.5, 0.05},  // 0 apex
	{0.35, 0.18}, // 1 upper left
	{0.65, 0.18}, // 2 upper right
	{0.25, 0.35}, // 3 middle left
	{0.75, 0.35}, // 4 middle right
	{0.5, 0.48},  // 5 center
	{0.35, 0.65}, // 6 lower left
	{0.65, 0.65}, // 7 lower right
	{0.5, 0.78},  // 8 foundation
	{0.5, 0.9},   // 9 base
}

// TreePaths are the 22 undirected edges of the scaffold as indices into
// TreeNodes, in draw order.
var TreePaths = [22][2]int{
	{0, 1}, {0, 2}, {1, 2},
	{1, 3}, {1, 5}, {1, 4},
	{2, 4}, {2, 5}, {2, 3},
	{3, 4}, {3, 5}, {4, 5},
	{3, 6}, {4, 7},
	{5, 6}, {5, 7}, {5, 8},
	{6, 7}, {6, 8}, {7, 8},
	{6, 9}, {7, 9},
}

// TreeColors are the two colors of the tree scaffold.
type TreeColors struct {
	Path RGBA // edge strokes
	Node RGBA // node disc fills
}

// DrawTreeScaffold strokes the 22 scaffold edges and then fills the 10
// node discs. Node radius is min(width, height)/TWENTYTWO.
//
// The number of draw calls is fixed: 22 edge strokes and 10 node fills,
// whatever the surface size.
func DrawTreeScaffold(s Surface, width, height float64, colors TreeColors, num Numerology) error {
	var nodes [len(TreeNodes)]Point
	for i, n := range TreeNodes {
		nodes[i] = n.Scale(width, height)
	}
	nodeRadius := math.Min(width, height) / float64(num.TwentyTwo)

	return isolate(s, func() error {
		s.SetStrokeColor(colors.Path)
		s.SetLineWidth(1)
		s.SetAlpha(TreeAlpha)

		for _, edge := range TreePaths {
			a, b := nodes[edge[0]], nodes[edge[1]]
			s.BeginPath()
			s.MoveTo(a.X, a.Y)
			s.LineTo(b.X, b.Y)
			if err := s.Stroke(); err != nil {
				return err
			}
		}

		s.SetFillColor(colors.Node)
		for _, n := range nodes {
			s.BeginPath()
			s.Arc(n.X, n.Y, nodeRadius, 0, 2*math.Pi)
			if err := s.Fill(); err != nil {
				return err
			}
		}
		return nil
	})
}
