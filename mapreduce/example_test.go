package mapreduce_test

import (
	"fmt"

	"github.com/tessella-dev/tessella/frame"
	"github.com/tessella-dev/tessella/geom"
	"github.com/tessella-dev/tessella/grid"
	"github.com/tessella-dev/tessella/mapreduce"
)

// ExampleRunner_Run doubles every pixel tile by tile and stitches the
// tiles back into a full image.
func ExampleRunner_Run() {
	img, _ := frame.New(geom.NewBox(0, 0, 8, 8))
	img.Value().Fill(2)

	double := func(core, _ *frame.Frame, _ geom.Box, _ mapreduce.Extras) (mapreduce.TileResult, error) {
		out := core.Clone()
		for y := 0; y < out.Bounds().H; y++ {
			row := out.Value().Row(y)
			for i := range row {
				row[i] *= 2
			}
		}
		return mapreduce.FrameResult(out), nil
	}

	cfg := grid.Config{
		SizeX: 4, SizeY: 4,
		StepX: 4, StepY: 4,
		BorderX: 1, BorderY: 1,
		Adjust: grid.AdjustNone,
	}
	r, _ := mapreduce.NewRunner(double, cfg, mapreduce.DefaultOptions())

	res, _ := r.Run(img, nil)
	v, _ := res.Frame.Value().At(3, 3)
	fmt.Printf("pixel (3,3): %v\n", v)
	// Output:
	// pixel (3,3): 4
}

// ExampleParseReduceOp round-trips the configuration names.
func ExampleParseReduceOp() {
	for _, name := range []string{"none", "copy", "sum", "average"} {
		op, _ := mapreduce.ParseReduceOp(name)
		fmt.Println(op)
	}
	// Output:
	// none
	// copy
	// sum
	// average
}
