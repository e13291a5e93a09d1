package approx_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tso/approx"
	"github.com/katalvlaran/tso/bbv"
)

// ExampleOrder chains three one-byte cases from case 0 through their
// nearest unvisited neighbours.
func ExampleOrder() {
	set, err := bbv.FromStrings("11000000", "00110000", "01100000")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := approx.Order(context.Background(), set, approx.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order, "fallbacks:", res.Fallbacks)
	// Output:
	// [0 2 1] fallbacks: 0
}
