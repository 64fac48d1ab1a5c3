package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListEditsDoNotMutateOriginal(t *testing.T) {
	original := StringList{"Transporte", "Almoco", "Guia"}

	added := original.Add("Seguro")
	assert.Equal(t, StringList{"Transporte", "Almoco", "Guia", "Seguro"}, added)
	assert.Len(t, original, 3)

	removed := original.Remove(1)
	assert.Equal(t, StringList{"Transporte", "Guia"}, removed)
	assert.Equal(t, StringList{"Transporte", "Almoco", "Guia"}, original)

	replaced := original.Replace(0, "Transporte 4x4")
	assert.Equal(t, "Transporte 4x4", replaced[0])
	assert.Equal(t, "Transporte", original[0])
}

func TestStringListOutOfRangeIsNoop(t *testing.T) {
	l := StringList{"a", "b"}

	assert.Equal(t, l, l.Remove(-1))
	assert.Equal(t, l, l.Remove(2))
	assert.Equal(t, l, l.Replace(5, "x"))

	var empty StringList
	assert.Equal(t, StringList{"x"}, empty.Add("x"))
	assert.Empty(t, empty.Remove(0))
}
