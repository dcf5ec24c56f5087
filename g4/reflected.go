package g4

// ReflectedSolid is a mirror image of a base solid through the z = 0
// plane. Reflection preserves capacity.
type ReflectedSolid struct {
	named
	Base Solid
}

// NewReflectedSolid creates the z-mirror of a solid.
func NewReflectedSolid(base Solid) *ReflectedSolid {
	return &ReflectedSolid{named{base.SolidName() + ReflSuffix}, base}
}

// Capacity equals the base solid's capacity.
func (r *ReflectedSolid) Capacity() float64 {
	return r.Base.Capacity()
}
