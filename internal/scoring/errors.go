package scoring

import (
	"errors"
	"fmt"
)

// ErrEmptyLayer matches every EmptyLayerError via errors.Is.
var ErrEmptyLayer = errors.New("empty layer")

// EmptyLayerError is returned by layers 1, 2, 6 and 7 when the answer set
// holds no answers for that layer. It aborts the whole scoring run.
type EmptyLayerError struct {
	Layer int
}

func (e *EmptyLayerError) Error() string {
	return fmt.Sprintf("layer %d: no answers supplied", e.Layer)
}

// Is reports whether target is ErrEmptyLayer.
func (e *EmptyLayerError) Is(target error) bool {
	return target == ErrEmptyLayer
}
