package format

import (
	"fmt"
	"strconv"
	"strings"

	"yplus-tool/internal/yplus"
)

// FormatValue renders a real as the shortest decimal that round-trips, without
// an exponent. NaN renders as "NaN".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatResult produces a human-readable report of one calculation.
func FormatResult(in yplus.Input, r yplus.Result) string {
	var b strings.Builder

	b.WriteString("=== Y+ Calculation ===\n")
	b.WriteString(fmt.Sprintf("Velocity:           %s m/s\n", FormatValue(in.Velocity)))
	b.WriteString(fmt.Sprintf("Density:            %s kg/m^3\n", FormatValue(in.Density)))
	b.WriteString(fmt.Sprintf("Viscosity:          %s Pa*s\n", FormatValue(in.Viscosity)))
	b.WriteString(fmt.Sprintf("Length:             %s m\n", FormatValue(in.Length)))
	b.WriteString(fmt.Sprintf("Target Y+:          %s\n", FormatValue(in.YPlus)))

	b.WriteString("\n--- Result ---\n")
	b.WriteString(fmt.Sprintf("Reynolds Number:    %s\n", FormatValue(r.Reynolds)))
	b.WriteString(fmt.Sprintf("First Layer Height: %s m\n", FormatValue(r.FirstLayerHeight)))

	if bad := in.InvalidFields(); len(bad) > 0 {
		b.WriteString(fmt.Sprintf("\nInvalid: %s\n", strings.Join(bad, ", ")))
	}

	b.WriteString("======================")
	return b.String()
}
