package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand_BareVerb(t *testing.T) {
	c := ParseCommand("aim_stop")

	assert.Equal(t, "aim_stop", c.Verb)
	assert.Nil(t, c.Args)
}

func TestParseCommand_WithPayload(t *testing.T) {
	c := ParseCommand("aim_update:0.5,600,0.1,0.2")

	assert.Equal(t, "aim_update", c.Verb)
	assert.Equal(t, []string{"0.5", "600", "0.1", "0.2"}, c.Args)
}

func TestParseCommand_EmptyPayload(t *testing.T) {
	c := ParseCommand("speak:")

	assert.Equal(t, "speak", c.Verb)
	assert.Equal(t, []string{""}, c.Args)
}

func TestFloatField_MissingUsesDefault(t *testing.T) {
	assert.Equal(t, 1.5, floatField(nil, 0, 1.5))
	assert.Equal(t, 1.5, floatField([]string{"1"}, 3, 1.5))
}

func TestFloatField_MalformedUsesDefault(t *testing.T) {
	assert.Equal(t, 2.0, floatField([]string{"notanumber"}, 0, 2.0))
	assert.Equal(t, 2.0, floatField([]string{"  "}, 0, 2.0))
}

func TestFloatField_Valid(t *testing.T) {
	assert.Equal(t, 3.25, floatField([]string{"1", "3.25"}, 1, 0))
}

func TestStringField(t *testing.T) {
	assert.Equal(t, "metal", stringField([]string{" metal ", "10"}, 0))
	assert.Equal(t, "", stringField([]string{"x"}, 5))
}
