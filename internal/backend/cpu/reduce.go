package cpu

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// Sum reduces all elements to a rank-0 scalar array.
func (cpu *CPUBackend) Sum(x *tensor.Array) *tensor.Array {
	result, err := tensor.NewArray(tensor.Shape{})
	if err != nil {
		panic(fmt.Sprintf("sum: failed to create result array: %v", err))
	}

	var total float32
	for _, v := range x.Data() {
		total += v
	}
	result.Data()[0] = total
	return result
}
