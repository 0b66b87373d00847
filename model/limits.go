package model

import "math"

// MaxInt4 is the largest value stored in an INTEGER column: ids, stock,
// prices per day and rental lengths.
const MaxInt4 = math.MaxInt32
