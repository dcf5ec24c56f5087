// Package gdmlname resolves logical volume names the way a GDML export
// would: the declared name is sanitized and suffixed with the volume's
// pointer so that distinct volumes sharing a name stay distinguishable.
//
// Reflected volumes resolve through their constituent and append the
// reflection suffix, so a reflected copy is always named after the
// volume it mirrors.
package gdmlname

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/geomtools/g4"
)

// Generator resolves canonical names for logical volumes. The internal
// counter only disambiguates synthesized names for anonymous volumes;
// named volumes are keyed on identity alone. Not safe for concurrent
// use.
type Generator struct {
	titler  cases.Caser
	counter int
}

// NewGenerator creates a name generator.
func NewGenerator() *Generator {
	return &Generator{titler: cases.Title(language.English)}
}

// Resolve returns the canonical exported name for a logical volume.
// Resolving the same volume twice yields the same name.
func (g *Generator) Resolve(lv *g4.LogicalVolume) string {
	if c := lv.Constituent(); c != nil {
		return g.Resolve(c) + g4.ReflSuffix
	}
	name := lv.Name()
	if name == "" {
		name = g.synthesize(lv.Solid())
	}
	return sanitize(name) + fmt.Sprintf("%p", lv)
}

// synthesize builds a placeholder name from the solid's concrete type.
func (g *Generator) synthesize(solid g4.Solid) string {
	typeName := fmt.Sprintf("%T", solid)
	typeName = strings.TrimPrefix(typeName, "*")
	if i := strings.LastIndexByte(typeName, '.'); i >= 0 {
		typeName = typeName[i+1:]
	}
	name := fmt.Sprintf("%s%d", g.titler.String(strings.ToLower(typeName)), g.counter)
	g.counter++
	return name
}

// sanitize replaces characters outside the GDML name alphabet with
// underscores.
func sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// shared is the package-level generator used by Resolve. Conversions
// running concurrently must serialize access or use their own
// Generator.
var shared = NewGenerator()

// Resolve resolves through the shared package-level generator.
func Resolve(lv *g4.LogicalVolume) string {
	return shared.Resolve(lv)
}
