package anim

type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle, Min inclusive and Max exclusive.
type Rect struct {
	Min, Max Point
}

func RectFromSize(w, h float64) Rect {
	return Rect{Max: Point{X: w, Y: h}}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Segment is a straight line between two points.
type Segment struct {
	From, To Point
}

// RectTransform maps points of From onto To, scaling each axis independently.
type RectTransform struct {
	From, To Rect
}

func (t RectTransform) Apply(p Point) Point {
	return Point{
		X: mapAxis(p.X, t.From.Min.X, t.From.Width(), t.To.Min.X, t.To.Width()),
		Y: mapAxis(p.Y, t.From.Min.Y, t.From.Height(), t.To.Min.Y, t.To.Height()),
	}
}

func (t RectTransform) ApplySegment(s Segment) Segment {
	return Segment{From: t.Apply(s.From), To: t.Apply(s.To)}
}

func mapAxis(v, fromMin, fromSize, toMin, toSize float64) float64 {
	if fromSize == 0 {
		return toMin
	}
	return toMin + (v-fromMin)*toSize/fromSize
}
