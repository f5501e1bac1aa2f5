package vector_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vector/vector"
)

func ExampleVector() {
	v, err := vector.New[int]()
	if err != nil {
		panic(err)
	}
	for i := 0; i <= 100; i++ {
		_ = v.Append(i)
	}

	first, _ := v.Get(0)
	last, _ := v.Get(100)
	fmt.Println(v.Len(), v.Cap(), first, last)

	_, err = v.Get(v.Len())
	fmt.Println(errors.Is(err, vector.ErrIndexOutOfRange))

	v.Release()
	fmt.Println(v.State())

	// Output:
	// 101 200 0 100
	// true
	// released
}

func ExampleWithInitialCapacity() {
	v, _ := vector.New[string](vector.WithInitialCapacity(0))
	for _, s := range []string{"a", "b", "c"} {
		_ = v.Append(s)
		fmt.Print(v.Cap(), " ")
	}
	fmt.Println()

	// Output:
	// 1 2 4
}

func ExampleMulInPlace() {
	dst, _ := vector.New[float64]()
	gain, _ := vector.New[float64]()
	for i := 1; i <= 4; i++ {
		_ = dst.Append(float64(i))
		_ = gain.Append(0.5)
	}

	_ = vector.MulInPlace(dst, gain)
	for i := 0; i < dst.Len(); i++ {
		x, _ := dst.Get(i)
		fmt.Print(x, " ")
	}
	fmt.Println()

	// Output:
	// 0.5 1 1.5 2
}
