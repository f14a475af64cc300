// Package nn holds the host computation-graph collaborators referenced by
// initializer algorithms.
package nn

import "github.com/strata-ml/strata/internal/tensor"

// Layer is a node of a host computation graph whose weights an initializer
// fills. The layer is owned by the graph; parameters reference it without
// taking ownership.
type Layer struct {
	Name         string
	WeightsShape tensor.Shape
}

// FanIn returns the number of input units feeding one output unit: the
// product of all weight dimensions except the last.
func (l *Layer) FanIn() int {
	if len(l.WeightsShape) < 2 {
		return 0
	}
	n := 1
	for _, dim := range l.WeightsShape[:len(l.WeightsShape)-1] {
		n *= dim
	}
	return n
}

// FanOut returns the number of output units: the last weight dimension.
func (l *Layer) FanOut() int {
	if len(l.WeightsShape) < 2 {
		return 0
	}
	return l.WeightsShape[len(l.WeightsShape)-1]
}
