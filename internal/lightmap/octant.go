// Package lightmap computes which tiles a point light reaches on a 2-D grid
// using recursive shadowcasting, with optional radial falloff.
package lightmap

// Octant holds the multipliers that map a canonical sweep offset (dx, dy)
// into one of the eight octants around an origin:
//
//	x = ox + dx*XX + dy*XY
//	y = oy + dx*YX + dy*YY
//
// In the canonical octant dy = -row is the distance from the origin and dx
// sweeps -row..0 across the row.
type Octant struct {
	XX, XY, YX, YY int
}

// Apply maps the canonical offset (dx, dy) into grid coordinates.
func (o Octant) Apply(ox, oy, dx, dy int) (int, int) {
	return ox + dx*o.XX + dy*o.XY, oy + dx*o.YX + dy*o.YY
}

// Octants are the RogueBasin shadowcasting multipliers, in the order
// NNW, WNW, ENE, NNE, SSE, ESE, WSW, SSW.
var Octants = [8]Octant{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}
