package parser

import (
	"github.com/erraggy/geomtools/g4"
	"github.com/erraggy/geomtools/geoerrors"
)

// builder assembles the source model from a decoded document.
type builder struct {
	doc      *document
	log      Logger
	validate bool
	unit     float64 // length factor to mm
	aunit    float64 // angle factor to rad

	solids   map[string]g4.Solid
	volumes  map[string]*g4.LogicalVolume
	used     map[string]bool
	warnings []string
}

func newBuilder(doc *document, log Logger, validate bool) (*builder, error) {
	unit, err := unitScale(doc.Unit)
	if err != nil {
		return nil, err
	}
	aunit, err := angleScale(doc.AUnit)
	if err != nil {
		return nil, err
	}
	return &builder{
		doc:      doc,
		log:      log,
		validate: validate,
		unit:     unit,
		aunit:    aunit,
		solids:   make(map[string]g4.Solid),
		volumes:  make(map[string]*g4.LogicalVolume),
		used:     make(map[string]bool),
	}, nil
}

func (b *builder) build() (*ParseResult, error) {
	if b.validate {
		if err := b.checkReferences(); err != nil {
			return nil, err
		}
	}

	for i := range b.doc.Solids {
		spec := &b.doc.Solids[i]
		solid, err := b.buildSolid(spec)
		if err != nil {
			return nil, err
		}
		b.solids[spec.Name] = solid
	}

	// Volumes with a solid first, then reflections, so a reflection can
	// reference a volume declared later in the document.
	for i := range b.doc.Volumes {
		spec := &b.doc.Volumes[i]
		if spec.Reflect != "" {
			continue
		}
		solid, ok := b.solids[spec.Solid]
		if !ok {
			return nil, geoerrors.Newf(geoerrors.KindGeant,
				"volume %q references unknown solid %q", spec.Name, spec.Solid)
		}
		lv, err := g4.NewLogicalVolume(spec.Name, solid)
		if err != nil {
			return nil, err
		}
		b.volumes[spec.Name] = lv
		b.used[spec.Solid] = true
	}
	for i := range b.doc.Volumes {
		spec := &b.doc.Volumes[i]
		if spec.Reflect == "" {
			continue
		}
		base, ok := b.volumes[spec.Reflect]
		if !ok {
			return nil, geoerrors.Newf(geoerrors.KindGeant,
				"volume %q reflects unknown volume %q", spec.Name, spec.Reflect)
		}
		lv, err := g4.NewReflectedVolume(base)
		if err != nil {
			return nil, err
		}
		b.volumes[spec.Name] = lv
	}

	for i := range b.doc.Volumes {
		spec := &b.doc.Volumes[i]
		if err := b.placeDaughters(spec); err != nil {
			return nil, err
		}
	}

	worldLV, ok := b.volumes[b.doc.World]
	if !ok {
		return nil, geoerrors.Newf(geoerrors.KindGeant,
			"world volume %q is not defined", b.doc.World)
	}
	world, err := g4.NewWorldPlacement(b.doc.World+"_PV", worldLV)
	if err != nil {
		return nil, err
	}

	for name := range b.solids {
		if !b.used[name] && !b.usedByBoolean(name) {
			b.warnings = warnf(b.warnings, "solid %q is not referenced by any volume", name)
		}
	}

	return &ParseResult{
		Name:        b.doc.Name,
		World:       world,
		WorldVolume: worldLV,
		Volumes:     b.volumes,
		Solids:      b.solids,
		Warnings:    b.warnings,
	}, nil
}

// checkReferences validates names and cross-references before any
// construction happens.
func (b *builder) checkReferences() error {
	solidNames := make(map[string]bool, len(b.doc.Solids))
	for _, s := range b.doc.Solids {
		if s.Name == "" {
			return geoerrors.New(geoerrors.KindGeant, "solid with empty name")
		}
		if solidNames[s.Name] {
			return geoerrors.Newf(geoerrors.KindGeant, "duplicate solid name %q", s.Name)
		}
		solidNames[s.Name] = true
	}
	for _, s := range b.doc.Solids {
		if s.Type != "boolean" {
			continue
		}
		if !solidNames[s.Left] || !solidNames[s.Right] {
			return geoerrors.Newf(geoerrors.KindGeant,
				"boolean solid %q references unknown constituents %q, %q", s.Name, s.Left, s.Right)
		}
	}

	volumeNames := make(map[string]bool, len(b.doc.Volumes))
	for _, v := range b.doc.Volumes {
		if v.Name == "" {
			return geoerrors.New(geoerrors.KindGeant, "volume with empty name")
		}
		if volumeNames[v.Name] {
			return geoerrors.Newf(geoerrors.KindGeant, "duplicate volume name %q", v.Name)
		}
		volumeNames[v.Name] = true
		if (v.Solid == "") == (v.Reflect == "") {
			return geoerrors.Newf(geoerrors.KindGeant,
				"volume %q must set exactly one of solid and reflect", v.Name)
		}
		if v.Solid != "" && !solidNames[v.Solid] {
			return geoerrors.Newf(geoerrors.KindGeant,
				"volume %q references unknown solid %q", v.Name, v.Solid)
		}
	}
	for _, v := range b.doc.Volumes {
		if v.Reflect != "" && !volumeNames[v.Reflect] {
			return geoerrors.Newf(geoerrors.KindGeant,
				"volume %q reflects unknown volume %q", v.Name, v.Reflect)
		}
		for _, p := range v.Placements {
			if !volumeNames[p.Volume] {
				return geoerrors.Newf(geoerrors.KindGeant,
					"volume %q places unknown volume %q", v.Name, p.Volume)
			}
		}
	}
	if b.doc.World == "" {
		return geoerrors.New(geoerrors.KindGeant, "world volume is not set")
	}
	if !volumeNames[b.doc.World] {
		return geoerrors.Newf(geoerrors.KindGeant, "world volume %q is not defined", b.doc.World)
	}
	return nil
}

func (b *builder) placeDaughters(spec *VolumeSpec) error {
	if len(spec.Placements) == 0 {
		return nil
	}
	mother := b.volumes[spec.Name]
	for _, p := range spec.Placements {
		daughter, ok := b.volumes[p.Volume]
		if !ok {
			return geoerrors.Newf(geoerrors.KindGeant,
				"volume %q places unknown volume %q", spec.Name, p.Volume)
		}
		label := p.Name
		if label == "" {
			label = p.Volume + "_pv"
		}
		if _, err := mother.PlaceDaughter(label, daughter, b.transform(p.Translation, p.Rotation)); err != nil {
			return err
		}
	}
	return nil
}

// transform builds a placement transform from optional translation and
// rotation specs.
func (b *builder) transform(translation, rotation *XYZSpec) g4.Transform {
	tr := g4.IdentityTransform()
	if rotation != nil {
		tr.Rotation = g4.RotationXYZ(
			rotation.X*b.aunit, rotation.Y*b.aunit, rotation.Z*b.aunit)
	}
	if translation != nil {
		tr.Translation = g4.Point{
			X: translation.X * b.unit,
			Y: translation.Y * b.unit,
			Z: translation.Z * b.unit,
		}
	}
	return tr
}

// usedByBoolean reports whether a solid serves as a boolean
// constituent, which counts as a reference.
func (b *builder) usedByBoolean(name string) bool {
	for _, s := range b.doc.Solids {
		if s.Type == "boolean" && (s.Left == name || s.Right == name) {
			return true
		}
	}
	return false
}
