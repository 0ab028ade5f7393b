package utility

import (
	"errors"
	"math"
)

func IntToU8(i int) (uint8, error) {
	if i >= 0 && i <= math.MaxUint8 {
		return uint8(i), nil // #nosec G115
	}
	return 0, errors.New("integer overflow")
}

func IntToU8Unsafe(i int) uint8 {
	if i >= 0 && i <= math.MaxUint8 {
		return uint8(i) // #nosec G115
	}
	panic("integer overflow")
}
