package surface

import (
	"math"

	"github.com/colinrgodsey/cartesius/f64"
	"github.com/colinrgodsey/cartesius/f64/filters"

	"github.com/colinrgodsey/vec3d/lib/vec"
)

// Interpolator builds a height function from scattered surface samples.
// Gridded regions interpolate with Catmull-Rom; positions outside the
// sampled grid fall back to a microsphere fit.
func Interpolator(samples []Sample) (f64.Function2D, error) {
	var vs []f64.Vec3
	for _, s := range samples {
		vs = append(vs, s.Vec3())
	}
	interp, err := f64.Grid2D(vs, filters.CatmullRom)
	if err != nil {
		return nil, err
	}
	return interp.Fallback(f64.MicroSphere2D(vs)), nil
}

// NormalField samples f on a uniform grid from the origin to max and
// returns the unit surface normal at every interior grid point, oriented
// +z, y-major with x varying fastest.
func NormalField(f f64.Function2D, max f64.Vec2, stride float64) []vec.DVec {
	nx := int(math.Floor(max[0]/stride)) + 1
	ny := int(math.Floor(max[1]/stride)) + 1
	one := f64.Vec2{1, 1}

	// pad the resample bounds by one stride so the max row and column
	// are always produced
	hs := make(map[[2]int]float64, nx*ny)
	poss := f64.Grid2DPositions(f64.Vec2{}, one.Mul(stride), f64.Vec2{max[0] + stride, max[1] + stride})
	for sample := range f.Multi(poss) {
		ix := int(math.Round(sample[0] / stride))
		iy := int(math.Round(sample[1] / stride))
		hs[[2]int{ix, iy}] = sample[2]
	}

	at := func(ix, iy int) (vec.DVec, bool) {
		h, ok := hs[[2]int{ix, iy}]
		return vec.NewVec3(float64(ix)*stride, float64(iy)*stride, h), ok
	}

	var out []vec.DVec
	for iy := 1; iy < ny-1; iy++ {
		for ix := 1; ix < nx-1; ix++ {
			xm, okxm := at(ix-1, iy)
			xp, okxp := at(ix+1, iy)
			ym, okym := at(ix, iy-1)
			yp, okyp := at(ix, iy+1)
			if !okxm || !okxp || !okym || !okyp {
				continue
			}
			// central-difference tangents; x̂ × ŷ keeps the normal +z
			n := vec.Eval(vec.Cross(vec.Sub(xp, xm), vec.Sub(yp, ym)))
			out = append(out, n.Normalized())
		}
	}
	return out
}
