package mapreduce

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Masked elementwise kernels (ew*) shared by the merging strategies.
//
// Validity is a joint mask: a pixel contributes only when BOTH its value and
// its variance are non-NaN. Each kernel runs per row; rows with no NaN take
// a whole-slice gonum fast path, rows with NaNs fall back to a per-pixel
// loop. All loops are deterministic (ascending x) and allocation-free.

// ewRowHasNaN reports whether any element of val or vrc is NaN.
func ewRowHasNaN(val, vrc []float64) bool {
	for x := range val {
		if math.IsNaN(val[x]) || math.IsNaN(vrc[x]) {
			return true
		}
	}

	return false
}

// ewCopyRow overwrites dst rows with src rows wherever the source pixel is
// valid; invalid source pixels leave the destination untouched.
func ewCopyRow(dstVal, dstVrc, srcVal, srcVrc []float64) {
	if !ewRowHasNaN(srcVal, srcVrc) {
		copy(dstVal, srcVal)
		copy(dstVrc, srcVrc)

		return
	}
	for x := range srcVal {
		if math.IsNaN(srcVal[x]) || math.IsNaN(srcVrc[x]) {
			continue
		}
		dstVal[x] = srcVal[x]
		dstVrc[x] = srcVrc[x]
	}
}

// ewAddRow accumulates src rows into dst rows wherever the source pixel is
// valid. When wgt is non-nil, each valid pixel also increments its weight.
func ewAddRow(dstVal, dstVrc, srcVal, srcVrc, wgt []float64) {
	if !ewRowHasNaN(srcVal, srcVrc) {
		floats.Add(dstVal, srcVal)
		floats.Add(dstVrc, srcVrc)
		if wgt != nil {
			floats.AddConst(1, wgt)
		}

		return
	}
	for x := range srcVal {
		if math.IsNaN(srcVal[x]) || math.IsNaN(srcVrc[x]) {
			continue
		}
		dstVal[x] += srcVal[x]
		dstVrc[x] += srcVrc[x]
		if wgt != nil {
			wgt[x]++
		}
	}
}

// ewDivRow divides dst rows elementwise by the weight row. Pixels with zero
// weight hold an accumulated zero, so 0/0 yields NaN — the defined outcome
// for pixels outside all tile coverage.
func ewDivRow(dstVal, dstVrc, wgt []float64) {
	floats.Div(dstVal, wgt)
	floats.Div(dstVrc, wgt)
}
