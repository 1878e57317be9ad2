package ui

type Rect struct {
	X, Y          int
	Width, Height int
}

// Inner shrinks r by margin cells on every side.
func (r Rect) Inner(margin int) Rect {
	if r.Width <= 2*margin || r.Height <= 2*margin {
		return Rect{X: r.X + margin, Y: r.Y + margin}
	}
	return Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}
}

// splitLengths divides total by percentages. Rounding leftovers go to the
// last part so the parts always add up to total.
func splitLengths(total int, percents ...int) []int {
	sizes := make([]int, len(percents))
	used := 0
	for i, p := range percents {
		sizes[i] = total * p / 100
		used += sizes[i]
	}
	if len(sizes) > 0 {
		sizes[len(sizes)-1] += total - used
	}
	return sizes
}

// SplitHorizontal lays parts out left to right.
func SplitHorizontal(r Rect, percents ...int) []Rect {
	rects := make([]Rect, 0, len(percents))
	x := r.X
	for _, w := range splitLengths(r.Width, percents...) {
		rects = append(rects, Rect{X: x, Y: r.Y, Width: w, Height: r.Height})
		x += w
	}
	return rects
}

// SplitVertical lays parts out top to bottom.
func SplitVertical(r Rect, percents ...int) []Rect {
	rects := make([]Rect, 0, len(percents))
	y := r.Y
	for _, h := range splitLengths(r.Height, percents...) {
		rects = append(rects, Rect{X: r.X, Y: y, Width: r.Width, Height: h})
		y += h
	}
	return rects
}

// Regions are the three panes of the player screen.
type Regions struct {
	Files  Rect
	Status Rect
	Body   Rect
}

// Compute places the panes for a width x height screen: a 30/70 split inside a
// one cell margin, and a 20/80 split of the right side inside another margin.
func Compute(width, height int) Regions {
	chunks := SplitHorizontal(Rect{Width: width, Height: height}.Inner(1), 30, 70)
	right := SplitVertical(chunks[1].Inner(1), 20, 80)
	return Regions{
		Files:  chunks[0],
		Status: right[0],
		Body:   right[1],
	}
}
