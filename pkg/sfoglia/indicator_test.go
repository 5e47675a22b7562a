package sfoglia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndicatorLabels(t *testing.T) {
	ind := NewIndicator("en")

	assert.Equal(t, "Cover", ind.Label(0, 4))
	assert.Equal(t, "Page 1", ind.Label(1, 4))
	assert.Equal(t, "Page 3", ind.Label(3, 4))
	assert.Equal(t, "End", ind.Label(5, 4))
}

func TestIndicatorLabelsLocalized(t *testing.T) {
	ind := NewIndicator("it")

	assert.Equal(t, "Copertina", ind.Label(0, 4))
	assert.Equal(t, "Pagina 3", ind.Label(3, 4))
	assert.Equal(t, "Fine", ind.Label(5, 4))
}

func TestIndicatorFallsBackToEnglish(t *testing.T) {
	ind := NewIndicator("zz")

	assert.Equal(t, "Cover", ind.Label(0, 4))
	assert.Equal(t, "Page 2", ind.Label(2, 4))
}
