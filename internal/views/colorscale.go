package views

import (
	"fmt"
	"html/template"
	"math"
)

// ylGnBu is the nine-stop ColorBrewer YlGnBu ramp, light to dark.
var ylGnBu = [][3]float64{
	{255, 255, 217},
	{237, 248, 177},
	{199, 233, 180},
	{127, 205, 187},
	{65, 182, 196},
	{29, 145, 192},
	{34, 94, 168},
	{37, 52, 148},
	{8, 29, 88},
}

const missingColor = template.CSS("#bdbdbd")

// ScaleColor maps v within [lo, hi] onto the YlGnBu ramp.
// Values above hi (including +Inf) take the darkest stop; NaN is grey.
func ScaleColor(v, lo, hi float64) template.CSS {
	if math.IsNaN(v) {
		return missingColor
	}
	t := 0.0
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	t = math.Max(0, math.Min(1, t))

	pos := t * float64(len(ylGnBu)-1)
	i := int(math.Floor(pos))
	if i >= len(ylGnBu)-1 {
		i = len(ylGnBu) - 2
	}
	frac := pos - float64(i)

	var rgb [3]int
	for c := range rgb {
		rgb[c] = int(math.Round(ylGnBu[i][c] + (ylGnBu[i+1][c]-ylGnBu[i][c])*frac))
	}
	return template.CSS(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]))
}
