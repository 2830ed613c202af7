package table_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/spectra/table"
)

func ExampleProduct() {
	spd, _ := table.New([][]float64{{450, 550, 650}, {1, 2, 1}})
	rfl, _ := table.New([][]float64{{450, 550, 650}, {0.1, 0.5, 0.9}})

	stim, err := table.Product(spd, rfl)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(stim.Curve(0))

	// Output:
	// [0.1 1 0.9]
}
