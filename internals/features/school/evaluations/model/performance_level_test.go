package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerformanceLevelNumeric(t *testing.T) {
	assert.Equal(t, 5.0, PerformanceExcellent.Numeric())
	assert.Equal(t, 4.0, PerformanceOutstanding.Numeric())
	assert.Equal(t, 3.0, PerformanceAcceptable.Numeric())
	assert.Equal(t, 2.0, PerformanceInsufficient.Numeric())
	assert.Equal(t, 0.0, PerformanceUnset.Numeric())
}

// Numeric harus total: input apapun menghasilkan angka, tidak pernah panic.
func TestPerformanceLevelNumeric_Totality(t *testing.T) {
	weird := []PerformanceLevel{"", "EXCELLENT", "bagus", "excelente", "5"}
	for _, lvl := range weird {
		assert.Equal(t, 0.0, lvl.Numeric(), "level %q harus 0", lvl)
	}
}

func TestPerformanceLevelLabel(t *testing.T) {
	assert.Equal(t, "Sangat Baik", PerformanceExcellent.Label())
	assert.Equal(t, "Baik", PerformanceOutstanding.Label())
	assert.Equal(t, "Cukup", PerformanceAcceptable.Label())
	assert.Equal(t, "Kurang", PerformanceInsufficient.Label())
	assert.Equal(t, "-", PerformanceUnset.Label())
	assert.Equal(t, "-", PerformanceLevel("apapun").Label())
}

func TestPerformanceLevelIsValid(t *testing.T) {
	assert.True(t, PerformanceUnset.IsValid())
	assert.True(t, PerformanceExcellent.IsValid())
	assert.False(t, PerformanceLevel("").IsValid())
	assert.False(t, PerformanceLevel("great").IsValid())
}
