package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sat-tools/satkit/internal/core"
)

func TestVariantFlagDefault(t *testing.T) {
	v, err := variantFlag("")
	assert.NoError(t, err)
	assert.Equal(t, core.DPLLWatchers, v)
}

func TestVariantFlagKnown(t *testing.T) {
	for _, want := range core.Variants() {
		v, err := variantFlag(string(want))
		assert.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestVariantFlagUnknown(t *testing.T) {
	_, err := variantFlag("bogus")
	assert.Error(t, err)
}
