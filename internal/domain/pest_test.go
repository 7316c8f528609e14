package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPestRecord_AffectsCrop(t *testing.T) {
	rec := PestRecord{
		Name:          "Aphids",
		AffectedCrops: []string{"Wheat", "Mustard", "Cotton"},
	}

	assert.True(t, rec.AffectsCrop("Wheat"))
	assert.True(t, rec.AffectsCrop("wheat"))
	assert.True(t, rec.AffectsCrop("COTTON"))
	assert.False(t, rec.AffectsCrop("Rice"))
	assert.False(t, rec.AffectsCrop(""))
}
