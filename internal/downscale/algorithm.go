package downscale

import (
	"errors"
	"fmt"
)

// Algorithm selects the resampling filter.
type Algorithm int

const (
	Nearest Algorithm = iota
	Average
	Lanczos
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognized names.
var ErrUnknownAlgorithm = errors.New("is not a valid algorithm")

var algorithmNames = [...]string{
	Nearest: "nearest",
	Average: "average",
	Lanczos: "lanczos",
}

// Algorithms returns every algorithm name in selector order.
func Algorithms() []string {
	return algorithmNames[:]
}

// ParseAlgorithm maps an exact, case-sensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%s %w", name, ErrUnknownAlgorithm)
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}
