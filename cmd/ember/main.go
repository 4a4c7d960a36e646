// Package main provides the Ember CLI.
package main

import (
	"fmt"
	"os"

	"github.com/ember-ml/ember/autodiff"
	"github.com/ember-ml/ember/backend/cpu"
	"github.com/ember-ml/ember/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Ember %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("Ember - Reverse-Mode Automatic Differentiation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate z = sum(x^3) and print dz/dx")
}

// demo differentiates z = sum(x^3) at x = 2 and prints the gradient.
func demo() {
	g := autodiff.New(cpu.New())

	x, err := tensor.FromSlice([]float32{2}, tensor.Shape{1}, "x")
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}

	y := g.Pow(x, 3)
	z := g.Sum(y)
	g.Backward(z)

	fmt.Printf("x      = %v\n", x.Data().Data())
	fmt.Printf("z      = sum(x^3) = %v\n", z.Data().Item())
	fmt.Printf("dz/dx  = %v\n", x.Grad().Data())
}
