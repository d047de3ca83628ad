package vec

import "math"

// Scalar is the element type of a vector: any real floating-point type.
type Scalar interface {
	~float32 | ~float64
}

// Factor is any numeric type usable as a scalar multiplier or divisor.
// The element type of the result always follows the vector operand.
type Factor interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Expr is a 3-component vector expression. The accessors are pure: they
// may be called in any order, any number of times, and recompute on every
// call. Vec3 terminates an expression with concrete storage; every other
// variant is a lazy node built by the package-level constructors, holding
// its operands unevaluated until a component is read.
type Expr[S Scalar] interface {
	X() S
	Y() S
	Z() S
}

/* Derived operations */

// Dot returns the dot product a⋅b.
func Dot[S Scalar](a, b Expr[S]) S {
	return a.X()*b.X() + a.Y()*b.Y() + a.Z()*b.Z()
}

// SquaredNorm returns v⋅v.
func SquaredNorm[S Scalar](v Expr[S]) S {
	return Dot(v, v)
}

// Norm returns the length of v. The argument to the square root is a sum
// of squares and never negative.
func Norm[S Scalar](v Expr[S]) S {
	return S(math.Sqrt(float64(SquaredNorm(v))))
}

/* Node constructors */

// Add returns the lazy element-wise sum l + r.
func Add[S Scalar](l, r Expr[S]) Expr[S] {
	return sumExpr[S]{l, r}
}

// Sub returns the lazy element-wise difference l - r.
func Sub[S Scalar](l, r Expr[S]) Expr[S] {
	return diffExpr[S]{l, r}
}

// Neg returns the lazy element-wise negation -v.
func Neg[S Scalar](v Expr[S]) Expr[S] {
	return negExpr[S]{v}
}

// Mul returns the lazy scalar product v * s. The scalar may be any Factor
// type; it is converted to the element type of v at construction.
func Mul[S Scalar, F Factor](v Expr[S], s F) Expr[S] {
	return scaleExpr[S]{v, S(s)}
}

// Div returns the lazy scalar quotient v / s. A zero scalar divides per
// IEEE semantics of the element type.
func Div[S Scalar, F Factor](v Expr[S], s F) Expr[S] {
	return quotExpr[S]{v, S(s)}
}

// Cross returns the lazy cross product a × b.
func Cross[S Scalar](a, b Expr[S]) Expr[S] {
	return crossExpr[S]{a, b}
}

/* Nodes */

type sumExpr[S Scalar] struct{ l, r Expr[S] }

func (e sumExpr[S]) X() S { return e.l.X() + e.r.X() }
func (e sumExpr[S]) Y() S { return e.l.Y() + e.r.Y() }
func (e sumExpr[S]) Z() S { return e.l.Z() + e.r.Z() }

type diffExpr[S Scalar] struct{ l, r Expr[S] }

func (e diffExpr[S]) X() S { return e.l.X() - e.r.X() }
func (e diffExpr[S]) Y() S { return e.l.Y() - e.r.Y() }
func (e diffExpr[S]) Z() S { return e.l.Z() - e.r.Z() }

type negExpr[S Scalar] struct{ v Expr[S] }

func (e negExpr[S]) X() S { return -e.v.X() }
func (e negExpr[S]) Y() S { return -e.v.Y() }
func (e negExpr[S]) Z() S { return -e.v.Z() }

type scaleExpr[S Scalar] struct {
	v Expr[S]
	s S
}

func (e scaleExpr[S]) X() S { return e.v.X() * e.s }
func (e scaleExpr[S]) Y() S { return e.v.Y() * e.s }
func (e scaleExpr[S]) Z() S { return e.v.Z() * e.s }

type quotExpr[S Scalar] struct {
	v Expr[S]
	s S
}

func (e quotExpr[S]) X() S { return e.v.X() / e.s }
func (e quotExpr[S]) Y() S { return e.v.Y() / e.s }
func (e quotExpr[S]) Z() S { return e.v.Z() / e.s }

type crossExpr[S Scalar] struct{ a, b Expr[S] }

func (e crossExpr[S]) X() S { return e.a.Y()*e.b.Z() - e.b.Y()*e.a.Z() }
func (e crossExpr[S]) Y() S { return e.a.Z()*e.b.X() - e.b.Z()*e.a.X() }
func (e crossExpr[S]) Z() S { return e.a.X()*e.b.Y() - e.b.X()*e.a.Y() }
