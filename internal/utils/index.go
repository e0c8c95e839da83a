package utils

// Index is a named []int used for the precomputed periodic neighbor
// tables in internal/kinetic.
type Index []int

func NewIndex(n int) Index { return make(Index, n) }
