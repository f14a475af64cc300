package nn

import (
	"testing"

	"github.com/strata-ml/strata/internal/tensor"
)

func TestFanInFanOutLinear(t *testing.T) {
	l := &Layer{Name: "fc", WeightsShape: tensor.Shape{784, 128}}
	if got := l.FanIn(); got != 784 {
		t.Errorf("FanIn = %d, want 784", got)
	}
	if got := l.FanOut(); got != 128 {
		t.Errorf("FanOut = %d, want 128", got)
	}
}

func TestFanInFanOutConv(t *testing.T) {
	// kh * kw * cin feed each output channel.
	l := &Layer{Name: "conv", WeightsShape: tensor.Shape{3, 3, 16, 32}}
	if got := l.FanIn(); got != 3*3*16 {
		t.Errorf("FanIn = %d, want %d", got, 3*3*16)
	}
	if got := l.FanOut(); got != 32 {
		t.Errorf("FanOut = %d, want 32", got)
	}
}

func TestFanDegenerateShapes(t *testing.T) {
	for _, shape := range []tensor.Shape{nil, {8}} {
		l := &Layer{WeightsShape: shape}
		if l.FanIn() != 0 || l.FanOut() != 0 {
			t.Errorf("shape %v: fan = (%d, %d), want (0, 0)", shape, l.FanIn(), l.FanOut())
		}
	}
}
