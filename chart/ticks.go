package chart

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// IntegerTicks places major ticks on whole numbers only, using steps
// of 1, 2 or 5 times a power of ten.
type IntegerTicks struct{}

var _ plot.Ticker = IntegerTicks{}

const targetTicks = 8

// Ticks implements plot.Ticker.
func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	lo, hi := math.Ceil(min), math.Floor(max)
	if hi < lo {
		return nil
	}

	step := integerStep(hi - lo)
	start := math.Ceil(lo/step) * step

	var ticks []plot.Tick
	for v := start; v <= hi; v += step {
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: strconv.FormatFloat(v, 'f', 0, 64),
		})
	}

	return ticks
}

func integerStep(span float64) float64 {
	if span <= targetTicks {
		return 1
	}

	raw := span / targetTicks
	mag := math.Pow(10, math.Floor(math.Log10(raw)))

	for _, m := range []float64{1, 2, 5, 10} {
		if step := m * mag; step >= raw {
			return math.Max(1, step)
		}
	}

	return math.Max(1, 10*mag)
}
