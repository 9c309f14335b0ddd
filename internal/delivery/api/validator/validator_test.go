package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	BusinessRef string   `validate:"required,excludesall=/:"`
	Latitude    *float64 `validate:"required,min=-90,max=90"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	lat := 25.03
	farNorth := 91.0

	assert.NoError(t, v.Validate(&sample{BusinessRef: "corner-bakery", Latitude: &lat}))

	err := v.Validate(&sample{BusinessRef: "a/b", Latitude: &farNorth})
	assert.ErrorContains(t, err, "sample.BusinessRef failed on 'excludesall'")
	assert.ErrorContains(t, err, "sample.Latitude failed on 'max'")

	assert.ErrorContains(t, v.Validate(&sample{}), "failed on 'required'")
}
