package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "notepad", Normalize("  Notepad "))
	assert.Equal(t, "visual studio code", Normalize("Visual Studio Code"))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize(""))
}

func TestRecordValid(t *testing.T) {
	assert.True(t, Record{Name: "Foo"}.Valid())
	assert.False(t, Record{Name: ""}.Valid())
	assert.False(t, Record{Name: "  "}.Valid())
}

func TestRecordHasSource(t *testing.T) {
	rec := Record{Name: "Foo", Sources: []Source{SourceRegistry}}

	assert.True(t, rec.HasSource(SourceRegistry))
	assert.False(t, rec.HasSource(SourceStartMenu))
}
