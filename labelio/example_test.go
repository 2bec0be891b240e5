package labelio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/metastates/labelio"
	"github.com/katalvlaran/metastates/rle"
)

// ExampleWriteSegments loads a 1-based label file, encodes it and prints
// the interval table at 250 Hz.
func ExampleWriteSegments() {
	labels, err := labelio.Load(strings.NewReader("1 1 1 2 2 1"), -1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	ivs, err := rle.Encode(labels)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	segs, err := rle.Annotate(ivs, 250)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err := labelio.WriteSegments(os.Stdout, segs, 1); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// start	stop	label	samples	ms
	// 0	3	1	3	12.000
	// 3	5	2	2	8.000
	// 5	6	1	1	4.000
}
