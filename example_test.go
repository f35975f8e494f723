package splitvec_test

import (
	"fmt"

	"github.com/gosplitvec/splitvec"
)

// Example_pinnedAddress demonstrates that an address obtained from Get
// survives later pushes that grow the vector into new fragments.
func Example_pinnedAddress() {
	v := splitvec.New[string]()
	v.Push("root")
	root, _ := v.Get(0)

	for i := 0; i < 20; i++ {
		v.Push(fmt.Sprintf("node-%d", i))
	}

	fmt.Println(*root)
	// Output: root
}

// Example_trySlice demonstrates the three outcomes of TryGetSlice.
func Example_trySlice() {
	v := splitvec.New[int]()
	v.ExtendFromSlice([]int{0, 1, 2, 3, 4})

	ok := v.TryGetSlice(1, 3)
	fmt.Println(ok.Kind == splitvec.SliceOk, ok.Slice)

	fragmented := v.TryGetSlice(3, 5)
	fmt.Println(fragmented.Kind == splitvec.SliceFragmented)

	// Output:
	// true [1 2]
	// true
}
