package hexmesh

// Range is a contiguous run of vertices.
type Range struct {
	First int
	Count int
}

// Segment joins two vertices by index.
type Segment struct {
	A, B int
}

// DrawPlan lists the primitives that draw a mesh as a hexagon wireframe.
type DrawPlan struct {
	Points  Range     // every vertex
	Strips  []Range   // major-axis zigzag lines
	Crosses []Segment // minor-axis edges joining adjacent strips
}

// Plan derives the draw ranges from the mesh layout.
func (m *Mesh) Plan() DrawPlan {
	p := DrawPlan{Points: Range{First: 0, Count: len(m.Vertices)}}

	count := m.Strips()
	size := m.MajorSize
	if count == 0 || size == 0 {
		return p
	}

	for k := 0; k < count-1; k++ {
		p.Strips = append(p.Strips, Range{First: k * size, Count: size})
	}
	last := (count - 1) * size
	if count%2 == 1 && size > 2 {
		// With an odd strip count the outermost segments of the last strip
		// fall outside the outline.
		p.Strips = append(p.Strips, Range{First: last + 1, Count: size - 2})
	} else {
		p.Strips = append(p.Strips, Range{First: last, Count: size})
	}

	// Even columns join strips (0,1), (2,3), ...
	for c := 0; c < size; c += 2 {
		for k := 0; k+1 < count; k += 2 {
			p.Crosses = append(p.Crosses, Segment{A: k*size + c, B: (k+1)*size + c})
		}
	}
	// Odd columns join strips (1,2), (3,4), ...
	for c := 1; c < size; c += 2 {
		for k := 1; k+1 < count; k += 2 {
			p.Crosses = append(p.Crosses, Segment{A: k*size + c, B: (k+1)*size + c})
		}
	}

	return p
}

// Strip returns the vertices covered by r.
func (m *Mesh) Strip(r Range) []Vec3 {
	return m.Vertices[r.First : r.First+r.Count]
}
