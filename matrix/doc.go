// Package matrix holds the dense storage used by package histogram.
//
// A histogram with S spatial bins and C payload channels is a S×C Dense:
//
//	row r    → spatial bin with flat offset r (see ndindex.Flatten)
//	column c → payload channel c
//	data     → r*C + c, i.e. exactly the histogram's flat slot layout
//
// Dense is generic over ndindex.Real, bounds-checks every public accessor and
// reports violations as wrapped ErrIndexOutOfBounds instead of panicking.
// It is not safe for concurrent mutation.
package matrix
