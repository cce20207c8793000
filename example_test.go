package bsieve_test

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/bsieve/bsieve"
)

// This example demonstrates basic bloom filter usage for membership testing.
func ExampleFilter() {
	// Create a filter for 10,000 items with 1% false positive rate
	f, err := bsieve.New(10_000, 0.01)
	if err != nil {
		log.Fatal(err)
	}

	f.Add([]byte("apple"))
	f.Add([]byte("banana"))

	fmt.Println("apple:", f.Test([]byte("apple")))   // true (added)
	fmt.Println("banana:", f.Test([]byte("banana"))) // true (added)
	fmt.Println("grape:", f.Test([]byte("grape")))   // false (not added)

	// Output:
	// apple: true
	// banana: true
	// grape: false
}

// This example deduplicates a stream of lines: each distinct line passes
// through once, repeats are suppressed.
func ExampleProcessor_Run() {
	f, err := bsieve.New(1000, 0.01)
	if err != nil {
		log.Fatal(err)
	}

	p := bsieve.NewProcessor(f, bsieve.Options{})

	in := strings.NewReader("apple\nbanana\napple\ncherry\nbanana\n")
	var out bytes.Buffer
	if err := p.Run(in, &out); err != nil {
		log.Fatal(err)
	}

	fmt.Print(out.String())
	// Output:
	// apple
	// banana
	// cherry
}

// This example shows invert mode, which prints only lines already known to
// the filter.
func ExampleProcessor_Run_invert() {
	f, err := bsieve.New(1000, 0.01)
	if err != nil {
		log.Fatal(err)
	}
	f.AddString("apple")
	f.AddString("cherry")

	p := bsieve.NewProcessor(f, bsieve.Options{Invert: true})

	in := strings.NewReader("apple\nbanana\ncherry\ndate\n")
	var out bytes.Buffer
	if err := p.Run(in, &out); err != nil {
		log.Fatal(err)
	}

	fmt.Print(out.String())
	// Output:
	// apple
	// cherry
}

// This example shows the parameters derived for a target capacity and false
// positive rate.
func ExampleOptimalParams() {
	m, k, err := bsieve.OptimalParams(1000, 0.01)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("m=%d bits, k=%d hashes\n", m, k)
	// Output:
	// m=9586 bits, k=7 hashes
}
