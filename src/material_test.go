package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialCode_KnownAliases(t *testing.T) {
	assert.Equal(t, MaterialGrass, MaterialCode("soil"))
	assert.Equal(t, MaterialConcrete, MaterialCode("ASPHALT"))
	assert.Equal(t, MaterialWood, MaterialCode("wood_planks"))
	assert.Equal(t, MaterialMetal, MaterialCode("metal_plate"))
	assert.Equal(t, MaterialWater, MaterialCode("water"))
	assert.Equal(t, MaterialMan, MaterialCode("man"))
	assert.Equal(t, MaterialGlass, MaterialCode("glass"))
}

func TestMaterialCode_None(t *testing.T) {
	assert.Equal(t, MaterialNone, MaterialCode("none"))
	assert.Equal(t, MaterialNone, MaterialCode("  None "))
}

func TestMaterialCode_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, MaterialDefault, MaterialCode("lava"))
	assert.Equal(t, MaterialDefault, MaterialCode(""))
}
