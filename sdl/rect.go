package sdl

import "math"

// Point is an SDL_Point.
type Point struct {
	X, Y int32
}

// FPoint is an SDL_FPoint.
type FPoint struct {
	X, Y float32
}

// Rect is an SDL_Rect with its origin at the upper left.
type Rect struct {
	X, Y, W, H int32
}

// FRect is an SDL_FRect.
type FRect struct {
	X, Y, W, H float32
}

// Line is a segment clipped in place by Rect.ClipLine.
type Line struct {
	Start, End Point
}

// FLine is a segment clipped in place by FRect.ClipLine.
type FLine struct {
	Start, End FPoint
}

// FloatEpsilon is SDL_FLT_EPSILON, the tolerance FRect.Equals uses.
const FloatEpsilon = 1.1920928955078125e-07

var (
	sdlHasIntersection       func(a, b *Rect) int32
	sdlIntersectRect         func(a, b, result *Rect) int32
	sdlUnionRect             func(a, b, result *Rect)
	sdlEnclosePoints         func(points *Point, count int32, clip, result *Rect) int32
	sdlIntersectRectAndLine  func(r *Rect, x1, y1, x2, y2 *int32) int32
	sdlHasIntersectionF      func(a, b *FRect) int32
	sdlIntersectFRect        func(a, b, result *FRect) int32
	sdlUnionFRect            func(a, b, result *FRect)
	sdlEncloseFPoints        func(points *FPoint, count int32, clip, result *FRect) int32
	sdlIntersectFRectAndLine func(r *FRect, x1, y1, x2, y2 *float32) int32
)

func init() {
	bind(
		"SDL_HasIntersection", &sdlHasIntersection,
		"SDL_IntersectRect", &sdlIntersectRect,
		"SDL_UnionRect", &sdlUnionRect,
		"SDL_EnclosePoints", &sdlEnclosePoints,
		"SDL_IntersectRectAndLine", &sdlIntersectRectAndLine,
		"SDL_HasIntersectionF", &sdlHasIntersectionF,
		"SDL_IntersectFRect", &sdlIntersectFRect,
		"SDL_UnionFRect", &sdlUnionFRect,
		"SDL_EncloseFPoints", &sdlEncloseFPoints,
		"SDL_IntersectFRectAndLine", &sdlIntersectFRectAndLine,
	)
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Equals reports whether r and o are identical.
func (r Rect) Equals(o Rect) bool { return r == o }

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// HasIntersection reports whether r and o overlap.
func (r Rect) HasIntersection(o Rect) bool {
	return sdlHasIntersection(&r, &o) == 1
}

// Intersect returns the overlap of r and o, false when there is none.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	var out Rect
	if sdlIntersectRect(&r, &o, &out) != 1 {
		return Rect{}, false
	}
	return out, true
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	var out Rect
	sdlUnionRect(&r, &o, &out)
	return out
}

// ClipLine clips l to r in place and reports whether any part of it is
// inside.
func (r Rect) ClipLine(l *Line) bool {
	return sdlIntersectRectAndLine(&r, &l.Start.X, &l.Start.Y, &l.End.X, &l.End.Y) == 1
}

// EnclosePoints returns the smallest rectangle holding every point, ignoring
// points outside clip when clip is not nil. It is false when no point counts.
func EnclosePoints(points []Point, clip *Rect) (Rect, bool) {
	if len(points) == 0 || len(points) > math.MaxInt32 {
		return Rect{}, false
	}
	var out Rect
	if sdlEnclosePoints(&points[0], int32(len(points)), clip, &out) != 1 {
		return Rect{}, false
	}
	return out, true
}

// Empty reports whether r has no area.
func (r FRect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Equals reports whether r and o match within FloatEpsilon.
func (r FRect) Equals(o FRect) bool { return r.EqualsEpsilon(o, FloatEpsilon) }

// EqualsEpsilon reports whether every field of r is within epsilon of o.
func (r FRect) EqualsEpsilon(o FRect, epsilon float32) bool {
	if r == o {
		return true
	}
	near := func(a, b float32) bool { return math.Abs(float64(a-b)) <= float64(epsilon) }
	return near(r.X, o.X) && near(r.Y, o.Y) && near(r.W, o.W) && near(r.H, o.H)
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r FRect) Contains(p FPoint) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// HasIntersection reports whether r and o overlap. It needs SDL 2.0.22.
func (r FRect) HasIntersection(o FRect) bool {
	return sdlHasIntersectionF(&r, &o) == 1
}

// Intersect returns the overlap of r and o, false when there is none.
func (r FRect) Intersect(o FRect) (FRect, bool) {
	var out FRect
	if sdlIntersectFRect(&r, &o, &out) != 1 {
		return FRect{}, false
	}
	return out, true
}

// Union returns the smallest rectangle containing r and o.
func (r FRect) Union(o FRect) FRect {
	var out FRect
	sdlUnionFRect(&r, &o, &out)
	return out
}

// ClipLine clips l to r in place and reports whether any part of it is
// inside.
func (r FRect) ClipLine(l *FLine) bool {
	return sdlIntersectFRectAndLine(&r, &l.Start.X, &l.Start.Y, &l.End.X, &l.End.Y) == 1
}

// EncloseFPoints is EnclosePoints for floating point coordinates.
func EncloseFPoints(points []FPoint, clip *FRect) (FRect, bool) {
	if len(points) == 0 || len(points) > math.MaxInt32 {
		return FRect{}, false
	}
	var out FRect
	if sdlEncloseFPoints(&points[0], int32(len(points)), clip, &out) != 1 {
		return FRect{}, false
	}
	return out, true
}
