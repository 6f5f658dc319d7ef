package list

import "fmt"

// OutOfRangeError reports a checked positional access outside the bounds of
// a container. It carries the index that was asked for and the container's
// size at the time of the call. Only At produces it; the unchecked and
// silent-no-op operations never do.
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("list: index out of range (index: %d, size: %d)", e.Index, e.Size)
}
