package parser

// document is the top-level YAML schema of a geometry description.
type document struct {
	Name    string       `yaml:"name"`
	Unit    string       `yaml:"unit"`  // mm (default), cm, m
	AUnit   string       `yaml:"aunit"` // deg (default), rad
	Solids  []SolidSpec  `yaml:"solids"`
	Volumes []VolumeSpec `yaml:"volumes"`
	World   string       `yaml:"world"`
}

// SolidSpec describes one solid. Type selects which parameter fields
// apply; lengths are in the document's unit and angles in its aunit.
type SolidSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// box, trd, para, elliptical tube
	HX  float64 `yaml:"hx"`
	HY  float64 `yaml:"hy"`
	HZ  float64 `yaml:"hz"`
	DX1 float64 `yaml:"dx1"`
	DX2 float64 `yaml:"dx2"`
	DY1 float64 `yaml:"dy1"`
	DY2 float64 `yaml:"dy2"`
	DX  float64 `yaml:"dx"`
	DY  float64 `yaml:"dy"`
	DZ  float64 `yaml:"dz"`

	// tube, cone, sphere, hype, paraboloid
	RMin   float64 `yaml:"rmin"`
	RMax   float64 `yaml:"rmax"`
	RMin1  float64 `yaml:"rmin1"`
	RMax1  float64 `yaml:"rmax1"`
	RMin2  float64 `yaml:"rmin2"`
	RMax2  float64 `yaml:"rmax2"`
	RLo    float64 `yaml:"rlo"`
	RHi    float64 `yaml:"rhi"`
	R      float64 `yaml:"r"`
	SPhi   float64 `yaml:"sphi"`
	DPhi   float64 `yaml:"dphi"`
	STheta float64 `yaml:"stheta"`
	DTheta float64 `yaml:"dtheta"`

	// trap, para shear
	Alpha  float64 `yaml:"alpha"`
	Alpha1 float64 `yaml:"alpha1"`
	Alpha2 float64 `yaml:"alpha2"`
	Theta  float64 `yaml:"theta"`
	Phi    float64 `yaml:"phi"`
	DX3    float64 `yaml:"dx3"`
	DX4    float64 `yaml:"dx4"`

	// ellipsoid, elliptical cone
	AX      float64  `yaml:"ax"`
	BY      float64  `yaml:"by"`
	CZ      float64  `yaml:"cz"`
	ZBottom *float64 `yaml:"zbottom"`
	ZTop    *float64 `yaml:"ztop"`
	A       float64  `yaml:"a"`
	B       float64  `yaml:"b"`
	H       float64  `yaml:"h"`
	ZCut    float64  `yaml:"zcut"`

	// hype
	InnerStereo float64 `yaml:"innerStereo"`
	OuterStereo float64 `yaml:"outerStereo"`

	// polycone, polyhedra
	NumSides int         `yaml:"numSides"`
	Planes   []PlaneSpec `yaml:"planes"`

	// generic polycone
	Profile []RZSpec `yaml:"profile"`

	// tet
	Anchor *XYZSpec `yaml:"anchor"`
	P2     *XYZSpec `yaml:"p2"`
	P3     *XYZSpec `yaml:"p3"`
	P4     *XYZSpec `yaml:"p4"`

	// arb8, xtru
	Vertices []XYSpec      `yaml:"vertices"`
	Polygon  []XYSpec      `yaml:"polygon"`
	Sections []SectionSpec `yaml:"sections"`

	// boolean
	Op          string   `yaml:"op"` // union, subtraction, intersection
	Left        string   `yaml:"left"`
	Right       string   `yaml:"right"`
	Translation *XYZSpec `yaml:"translation"`
	Rotation    *XYZSpec `yaml:"rotation"` // angles about x, y, z in aunit
}

// PlaneSpec is one z plane of a polycone or polyhedra.
type PlaneSpec struct {
	Z    float64 `yaml:"z"`
	RMin float64 `yaml:"rmin"`
	RMax float64 `yaml:"rmax"`
}

// RZSpec is one r-z profile vertex of a generic polycone.
type RZSpec struct {
	R float64 `yaml:"r"`
	Z float64 `yaml:"z"`
}

// XYSpec is a 2D vertex.
type XYSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// XYZSpec is a 3D vector.
type XYZSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// SectionSpec is one cross-section plane of an extruded solid.
// Scale defaults to 1 when omitted.
type SectionSpec struct {
	Z     float64  `yaml:"z"`
	OffX  float64  `yaml:"offx"`
	OffY  float64  `yaml:"offy"`
	Scale *float64 `yaml:"scale"`
}

// VolumeSpec describes one logical volume: either a solid reference or
// a reflection of another volume, plus daughter placements.
type VolumeSpec struct {
	Name       string          `yaml:"name"`
	Solid      string          `yaml:"solid"`
	Reflect    string          `yaml:"reflect"`
	Placements []PlacementSpec `yaml:"placements"`
}

// PlacementSpec places a daughter volume inside its enclosing volume.
type PlacementSpec struct {
	Volume      string   `yaml:"volume"`
	Name        string   `yaml:"name"`
	Translation *XYZSpec `yaml:"translation"`
	Rotation    *XYZSpec `yaml:"rotation"` // angles about x, y, z in aunit
}
