// Package parser reads YAML geometry descriptions and assembles the
// source geometry model from them.
//
// A description names its solids, the logical volumes built from them,
// the placements nesting volumes inside each other, and the world
// volume:
//
//	name: example
//	unit: mm
//	aunit: deg
//	solids:
//	  - name: worldBox
//	    type: box
//	    hx: 1000
//	    hy: 1000
//	    hz: 1000
//	  - name: box500
//	    type: box
//	    hx: 250
//	    hy: 250
//	    hz: 250
//	volumes:
//	  - name: box500
//	    solid: box500
//	  - name: World
//	    solid: worldBox
//	    placements:
//	      - volume: box500
//	        translation: {x: 300}
//	world: World
//
// Lengths are scaled by unit (mm, cm, or m) and angles by aunit (deg
// or rad). A volume entry with reflect instead of solid introduces the
// mirror copy of another volume.
package parser
