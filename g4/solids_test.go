package g4

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/geomtools/geoerrors"
)

const twoPi = 2 * math.Pi

func TestCapacities(t *testing.T) {
	mk := func(s Solid, err error) Solid {
		t.Helper()
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name  string
		solid Solid
		want  float64
	}{
		{
			name:  "box is 8 hx hy hz",
			solid: mk(NewBox("b", 250, 250, 250)),
			want:  1.25e8,
		},
		{
			name:  "full tube matches pi r^2 length",
			solid: mk(NewTubs("t", 0, 100, 50, 0, twoPi)),
			want:  math.Pi * 100 * 100 * 100,
		},
		{
			name:  "tube shell subtracts the inner cylinder",
			solid: mk(NewTubs("t", 50, 100, 50, 0, twoPi)),
			want:  math.Pi * (100*100 - 50*50) * 100,
		},
		{
			name:  "half tube is half the full tube",
			solid: mk(NewTubs("t", 0, 100, 50, 0, math.Pi)),
			want:  math.Pi * 100 * 100 * 100 / 2,
		},
		{
			name:  "full cone matches pi/3 r^2 h",
			solid: mk(NewCons("c", 0, 100, 0, 0, 50, 0, twoPi)),
			want:  math.Pi / 3 * 100 * 100 * 100,
		},
		{
			name:  "full sphere matches 4pi/3 r^3",
			solid: mk(NewSphere("s", 0, 100, 0, twoPi, 0, math.Pi)),
			want:  4 * math.Pi / 3 * 1e6,
		},
		{
			name:  "spherical shell subtracts the inner sphere",
			solid: mk(NewSphere("s", 50, 100, 0, twoPi, 0, math.Pi)),
			want:  4 * math.Pi / 3 * (1e6 - 50*50*50),
		},
		{
			name:  "orb matches 4pi/3 r^3",
			solid: mk(NewOrb("o", 100)),
			want:  4 * math.Pi / 3 * 1e6,
		},
		{
			name:  "uniform trd degenerates to a box",
			solid: mk(NewTrd("t", 10, 10, 20, 20, 30)),
			want:  8 * 10 * 20 * 30,
		},
		{
			name:  "tapered trd matches the prismatoid integral",
			solid: mk(NewTrd("t", 10, 20, 10, 20, 30)),
			// 4 * integral of (10 + 10 f)(10 + 10 f) over f in [0,1], times 2dz
			want: 4 * 60 * 700 / 3.0,
		},
		{
			name:  "rectangular trap degenerates to a box",
			solid: mk(NewTrap("t", 30, 0.1, 0.2, 20, 10, 10, 0.3, 20, 10, 10, 0.3)),
			want:  8 * 10 * 20 * 30,
		},
		{
			name:  "para shear preserves the box volume",
			solid: mk(NewPara("p", 10, 20, 30, 0.5, 0.3, 0.1)),
			want:  8 * 10 * 20 * 30,
		},
		{
			name: "polycone with constant radii is a tube",
			solid: mk(NewPolycone("pc", 0, twoPi, []ZPlane{
				{Z: -50, RMin: 0, RMax: 100},
				{Z: 50, RMin: 0, RMax: 100},
			})),
			want: math.Pi * 100 * 100 * 100,
		},
		{
			name: "polycone sums its segments",
			solid: mk(NewPolycone("pc", 0, twoPi, []ZPlane{
				{Z: 0, RMin: 0, RMax: 10},
				{Z: 10, RMin: 0, RMax: 10},
				{Z: 30, RMin: 0, RMax: 20},
			})),
			want: math.Pi*10*10*10 + twoPi/2*20/3*(100+200+400),
		},
		{
			name: "generic polycone with rectangular profile is a tube shell",
			solid: mk(NewGenericPolycone("gp", 0, twoPi, []RZ{
				{R: 10, Z: 0}, {R: 20, Z: 0}, {R: 20, Z: 30}, {R: 10, Z: 30},
			})),
			want: math.Pi * (20*20 - 10*10) * 30,
		},
		{
			name: "hexagonal polyhedra matches the apothem area",
			solid: mk(NewPolyhedra("ph", 0, twoPi, 6, []ZPlane{
				{Z: -10, RMin: 0, RMax: 5},
				{Z: 10, RMin: 0, RMax: 5},
			})),
			want: 6 * math.Tan(math.Pi/6) * 5 * 5 * 20,
		},
		{
			name:  "uncut ellipsoid matches 4pi/3 abc",
			solid: mk(NewEllipsoid("e", 10, 20, 30, -30, 30)),
			want:  4 * math.Pi / 3 * 10 * 20 * 30,
		},
		{
			name:  "half ellipsoid is half the full one",
			solid: mk(NewEllipsoid("e", 10, 20, 30, 0, 30)),
			want:  2 * math.Pi / 3 * 10 * 20 * 30,
		},
		{
			name:  "elliptical tube matches 2pi dx dy hz",
			solid: mk(NewEllipticalTube("et", 10, 20, 30)),
			want:  2 * math.Pi * 10 * 20 * 30,
		},
		{
			name:  "elliptical cone integrates the quadratic section",
			solid: mk(NewEllipticalCone("ec", 1, 1, 2, 1)),
			want:  26 * math.Pi / 3,
		},
		{
			name:  "paraboloid section area is linear in z",
			solid: mk(NewParaboloid("pb", 10, 20, 15)),
			want:  math.Pi * 15 * (100 + 400),
		},
		{
			name:  "hype with zero stereo is a tube shell",
			solid: mk(NewHype("h", 10, 20, 0, 0, 30)),
			want:  math.Pi * (400 - 100) * 60,
		},
		{
			name:  "hype bulge grows with the outer stereo angle",
			solid: mk(NewHype("h", 0, 20, 0, 0.5, 30)),
			want:  math.Pi * (400*60 + math.Tan(0.5)*math.Tan(0.5)*2*27000/3),
		},
		{
			name:  "unit right tetrahedron is 1/6",
			solid: mk(NewTet("tet", Point{}, Point{1, 0, 0}, Point{0, 1, 0}, Point{0, 0, 1})),
			want:  1.0 / 6,
		},
		{
			name: "arb8 with identical faces is a box",
			solid: mk(NewArb8("a", 30, [8]XY{
				{-10, -20}, {10, -20}, {10, 20}, {-10, 20},
				{-10, -20}, {10, -20}, {10, 20}, {-10, 20},
			})),
			want: 8 * 10 * 20 * 30,
		},
		{
			name: "tapered arb8 matches the frustum volume",
			solid: mk(NewArb8("a", 1, [8]XY{
				{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
				{-2, -2}, {2, -2}, {2, 2}, {-2, 2},
			})),
			// frustum: h/3 (A1 + A2 + sqrt(A1 A2)) with A1=4, A2=16
			want: 2.0 / 3 * (4 + 16 + 8),
		},
		{
			name: "unscaled xtru is a prism",
			solid: mk(NewXtru("x", []XY{{-10, -20}, {10, -20}, {10, 20}, {-10, 20}}, []ZSection{
				{Z: -30, Scale: 1},
				{Z: 30, Scale: 1},
			})),
			want: 8 * 10 * 20 * 30,
		},
		{
			name: "scaled xtru matches the frustum volume",
			solid: mk(NewXtru("x", []XY{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}, []ZSection{
				{Z: -1, Scale: 1},
				{Z: 1, Scale: 2, OffX: 5, OffY: -5},
			})),
			want: 2.0 / 3 * (4 + 16 + 8),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InEpsilon(t, tc.want, tc.solid.Capacity(), 1e-9)
		})
	}
}

func TestConstructorValidation(t *testing.T) {
	tests := []struct {
		name string
		err  func() error
	}{
		{"box with negative half-length", func() error { _, err := NewBox("b", -1, 1, 1); return err }},
		{"tube with inverted radii", func() error { _, err := NewTubs("t", 10, 5, 1, 0, twoPi); return err }},
		{"tube with zero extent", func() error { _, err := NewTubs("t", 0, 5, 1, 0, 0); return err }},
		{"cone with negative half-length", func() error { _, err := NewCons("c", 0, 1, 0, 2, -1, 0, twoPi); return err }},
		{"sphere with polar range past pi", func() error { _, err := NewSphere("s", 0, 1, 0, twoPi, 1, math.Pi); return err }},
		{"orb with zero radius", func() error { _, err := NewOrb("o", 0); return err }},
		{"trd fully degenerate in x", func() error { _, err := NewTrd("t", 0, 0, 1, 1, 1); return err }},
		{"polycone with one plane", func() error {
			_, err := NewPolycone("p", 0, twoPi, []ZPlane{{Z: 0, RMax: 1}})
			return err
		}},
		{"polycone with unordered planes", func() error {
			_, err := NewPolycone("p", 0, twoPi, []ZPlane{{Z: 1, RMax: 1}, {Z: 0, RMax: 1}})
			return err
		}},
		{"polyhedra with two sides", func() error {
			_, err := NewPolyhedra("p", 0, twoPi, 2, []ZPlane{{Z: 0, RMax: 1}, {Z: 1, RMax: 1}})
			return err
		}},
		{"ellipsoid cut outside the axis", func() error { _, err := NewEllipsoid("e", 1, 1, 1, -2, 1); return err }},
		{"coplanar tetrahedron", func() error {
			_, err := NewTet("t", Point{}, Point{1, 0, 0}, Point{0, 1, 0}, Point{1, 1, 0})
			return err
		}},
		{"xtru with non-positive scale", func() error {
			_, err := NewXtru("x", []XY{{0, 0}, {1, 0}, {0, 1}}, []ZSection{{Z: 0, Scale: 0}, {Z: 1, Scale: 1}})
			return err
		}},
		{"xtru with unordered sections", func() error {
			_, err := NewXtru("x", []XY{{0, 0}, {1, 0}, {0, 1}}, []ZSection{{Z: 1, Scale: 1}, {Z: 0, Scale: 1}})
			return err
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.err()
			require.Error(t, err)
			assert.ErrorIs(t, err, geoerrors.ErrRuntime)
		})
	}
}

func TestContains(t *testing.T) {
	box, err := NewBox("b", 1, 2, 3)
	require.NoError(t, err)
	assert.True(t, box.Contains(Point{0.5, -1.5, 2.5}))
	assert.False(t, box.Contains(Point{1.5, 0, 0}))

	tube, err := NewTubs("t", 1, 2, 5, 0, math.Pi)
	require.NoError(t, err)
	assert.True(t, tube.Contains(Point{0, 1.5, 0}), "inside the upper half")
	assert.False(t, tube.Contains(Point{0, -1.5, 0}), "outside the angular cut")
	assert.False(t, tube.Contains(Point{0.5, 0.5, 0}), "inside the inner hole")
	assert.False(t, tube.Contains(Point{1.5, 0, 6}), "past the z extent")

	sphere, err := NewSphere("s", 0, 2, 0, twoPi, 0, math.Pi/2)
	require.NoError(t, err)
	assert.True(t, sphere.Contains(Point{0, 0, 1}), "inside the upper hemisphere")
	assert.False(t, sphere.Contains(Point{0, 0, -1}), "below the polar cut")

	trd, err := NewTrd("t", 1, 2, 1, 2, 1)
	require.NoError(t, err)
	assert.True(t, trd.Contains(Point{1.8, 0, 0.9}), "wide near +dz")
	assert.False(t, trd.Contains(Point{1.8, 0, -0.9}), "narrow near -dz")
}

func TestInPhiRange(t *testing.T) {
	assert.True(t, inPhiRange(0, math.Pi, math.Pi/2))
	assert.False(t, inPhiRange(0, math.Pi, -math.Pi/2))
	// Wrap across the -pi/+pi seam of atan2.
	assert.True(t, inPhiRange(3*math.Pi/2, math.Pi, -math.Pi/4))
	assert.True(t, inPhiRange(-math.Pi/4, math.Pi/2, 0))
}
