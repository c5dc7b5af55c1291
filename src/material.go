package access

/*------------------------------------------------------------------
 *
 * Purpose:	Map a textual radar material name onto the small
 *		integer material code that selects a radar-beep
 *		waveform and base frequency.
 *
 *----------------------------------------------------------------*/

import "strings"

// Radar material codes. MaterialNone means "drop the beep silently";
// MaterialDefault is used for any unrecognized non-"none" name.
const (
	MaterialNone     int8 = -1
	MaterialDefault  int8 = 0
	MaterialGrass    int8 = 1
	MaterialConcrete int8 = 2
	MaterialWood     int8 = 3
	MaterialMetal    int8 = 4
	MaterialWater    int8 = 5
	MaterialMan      int8 = 6
	MaterialGlass    int8 = 7
)

// materialCodes is the exhaustive name-to-code table from the command
// grammar (spec §6). Lookup is case-insensitive.
var materialCodes = map[string]int8{
	"grass":       MaterialGrass,
	"soil":        MaterialGrass,
	"sand":        MaterialGrass,
	"dirt":        MaterialGrass,
	"concrete":    MaterialConcrete,
	"asphalt":     MaterialConcrete,
	"rock":        MaterialConcrete,
	"stone":       MaterialConcrete,
	"wood":        MaterialWood,
	"wood_planks": MaterialWood,
	"metal":       MaterialMetal,
	"metal_plate": MaterialMetal,
	"water":       MaterialWater,
	"man":         MaterialMan,
	"glass":       MaterialGlass,
	"none":        MaterialNone,
}

// MaterialCode resolves a radar material name to its code. Any name not
// present in the table, including the empty string, maps to
// MaterialDefault, never to an error — malformed input is never
// rejected outright.
func MaterialCode(name string) int8 {
	if code, ok := materialCodes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}

	return MaterialDefault
}
