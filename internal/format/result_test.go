package format

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"yplus-tool/internal/yplus"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{66208.79120879121, "66208.79120879121"},
		{2.691391695447763e-4, "0.0002691391695447763"},
		{1, "1"},
		{0, "0"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.in))
	}
}

func TestFormatResultValid(t *testing.T) {
	in := yplus.DefaultFields().Parse()
	out := FormatResult(in, yplus.Compute(in))

	assert.True(t, strings.HasPrefix(out, "=== Y+ Calculation ==="))
	assert.Contains(t, out, "Density:            1.205 kg/m^3")
	assert.Contains(t, out, "Viscosity:          0.0000182 Pa*s")
	assert.Contains(t, out, "Reynolds Number:    66208.7912087912")
	assert.Contains(t, out, "First Layer Height: 0.00026913916954")
	assert.NotContains(t, out, "Invalid")
}

func TestFormatResultInvalid(t *testing.T) {
	f := yplus.DefaultFields()
	f.Viscosity = "abc"
	in := f.Parse()
	out := FormatResult(in, yplus.Compute(in))

	assert.Contains(t, out, "Viscosity:          NaN Pa*s")
	assert.Contains(t, out, "Reynolds Number:    NaN")
	assert.Contains(t, out, "First Layer Height: NaN m")
	assert.Contains(t, out, "Invalid: viscosity")
}
