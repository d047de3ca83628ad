package vec

import (
	"encoding/json"
	"fmt"
	"io"
)

// Vec3 is a 3-component vector with concrete storage. It is the only
// mutable variant and the only one that forces evaluation: constructing
// or accumulating from an Expr reads each of the expression's components
// exactly once and stores the results.
//
// A Vec3 is a plain value. Concurrent readers are fine; any mutation (the
// pointer methods) needs exclusive access, same as any scalar-holding
// value. The package does no locking.
type Vec3[S Scalar] struct {
	x, y, z S
}

// DVec is a Vec3 of float64, the usual working type.
type DVec = Vec3[float64]

/* Constructors */

// NewVec3 creates a Vec3 from the provided components.
func NewVec3[S Scalar](x, y, z S) Vec3[S] {
	return Vec3[S]{x, y, z}
}

// Fill creates a Vec3 with every component set to s.
func Fill[S Scalar](s S) Vec3[S] {
	return Vec3[S]{s, s, s}
}

// Eval evaluates e into concrete storage, reading each component once.
func Eval[S Scalar](e Expr[S]) Vec3[S] {
	return Vec3[S]{e.X(), e.Y(), e.Z()}
}

// Cast evaluates e into concrete storage with element type T, reading
// each component once and converting.
func Cast[T, S Scalar](e Expr[S]) Vec3[T] {
	return Vec3[T]{T(e.X()), T(e.Y()), T(e.Z())}
}

/* Getters */

// X value of v
func (v Vec3[S]) X() S {
	return v.x
}

// Y value of v
func (v Vec3[S]) Y() S {
	return v.y
}

// Z value of v
func (v Vec3[S]) Z() S {
	return v.z
}

// Get all components of v
func (v Vec3[S]) Get() (x, y, z S) {
	return v.x, v.y, v.z
}

// Eq returns true if v and o are equal. Comparison is exact per
// component; callers that need a tolerance bring their own.
func (v Vec3[S]) Eq(o Vec3[S]) bool {
	return v == o
}

/* Mutation */

// MutX returns a writable reference to the x component.
func (v *Vec3[S]) MutX() *S {
	return &v.x
}

// MutY returns a writable reference to the y component.
func (v *Vec3[S]) MutY() *S {
	return &v.y
}

// MutZ returns a writable reference to the z component.
func (v *Vec3[S]) MutZ() *S {
	return &v.z
}

// SetAll sets every component of v to s.
func (v *Vec3[S]) SetAll(s S) *Vec3[S] {
	v.x, v.y, v.z = s, s, s
	return v
}

// Add evaluates e once per component and accumulates into v.
func (v *Vec3[S]) Add(e Expr[S]) *Vec3[S] {
	v.x += e.X()
	v.y += e.Y()
	v.z += e.Z()
	return v
}

// Sub evaluates e once per component and subtracts from v.
func (v *Vec3[S]) Sub(e Expr[S]) *Vec3[S] {
	v.x -= e.X()
	v.y -= e.Y()
	v.z -= e.Z()
	return v
}

// Mul scales v in place by s.
func (v *Vec3[S]) Mul(s S) *Vec3[S] {
	v.x *= s
	v.y *= s
	v.z *= s
	return v
}

// Div scales v in place by the multiplicative inverse of s.
func (v *Vec3[S]) Div(s S) *Vec3[S] {
	v.x /= s
	v.y /= s
	v.z /= s
	return v
}

/* Derived */

// Dot returns the dot product v⋅o.
func (v Vec3[S]) Dot(o Expr[S]) S {
	return Dot[S](v, o)
}

// Cross returns the lazy cross product v × o.
func (v Vec3[S]) Cross(o Expr[S]) Expr[S] {
	return Cross[S](v, o)
}

// SquaredNorm returns v⋅v.
func (v Vec3[S]) SquaredNorm() S {
	return SquaredNorm[S](v)
}

// Norm returns the length of v.
func (v Vec3[S]) Norm() S {
	return Norm[S](v)
}

// Normalized returns a copy of v scaled to unit length; v is unchanged.
// A zero vector divides by zero and yields non-finite components.
func (v Vec3[S]) Normalized() Vec3[S] {
	return Eval(Div[S, S](v, v.Norm()))
}

/* Marshalling */

func (v *Vec3[S]) UnmarshalJSON(b []byte) error {
	var a [3]S
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	v.x, v.y, v.z = a[0], a[1], a[2]
	return nil
}

func (v Vec3[S]) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]S{v.x, v.y, v.z})
}

func (v Vec3[S]) String() string {
	return fmt.Sprintf("%v %v %v", v.x, v.y, v.z)
}

/* Text IO */

// Fprint writes the components of e to w as decimal text in x y z order,
// separated by single spaces, with no trailing separator.
func Fprint[S Scalar](w io.Writer, e Expr[S]) error {
	_, err := fmt.Fprintf(w, "%v %v %v", e.X(), e.Y(), e.Z())
	return err
}

// Fscan reads three whitespace-separated scalars from r into v, in x y z
// order. Malformed or short input returns the fmt error as-is and may
// leave v partially assigned.
func Fscan[S Scalar](r io.Reader, v *Vec3[S]) error {
	_, err := fmt.Fscan(r, &v.x, &v.y, &v.z)
	return err
}
