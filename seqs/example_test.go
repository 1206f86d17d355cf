package seqs_test

import (
	"fmt"
	"slices"

	"arraylike/seqs"
)

func ExampleSum() {
	nums := slices.Values([]int{3, 8, 1, 6, 2})

	total := seqs.Sum(nums)
	avg, _ := seqs.Average(nums)
	lo, _ := seqs.Min(nums)
	hi, _ := seqs.Max(nums)

	fmt.Println("total:", total)
	fmt.Printf("average: %.2f\n", avg)
	fmt.Println("min:", lo)
	fmt.Println("max:", hi)

	// Output:
	// total: 20
	// average: 4.00
	// min: 1
	// max: 8
}

func ExampleRange() {
	word := "hello"
	for i := range seqs.Range(len(word)-1, -1, -1) {
		fmt.Print(string(word[i]))
	}
	fmt.Println()

	// Output:
	// olleh
}
