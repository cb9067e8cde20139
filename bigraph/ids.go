package bigraph

// The pipeline packs rows and columns of an R×C instance into one integer
// id space [0, R+C): id < R denotes row id, id >= R denotes column id-R.
// IsRow, ColOf and ColNode centralize that convention; ColOf and ColNode
// are inverse over their valid ranges.

// IsRow reports whether id denotes a row under the given row count.
func IsRow(id, numRows int) bool {
	return id < numRows
}

// ColOf maps a column node id back to its column index.
// Only meaningful for ids with IsRow(id, numRows) == false.
func ColOf(id, numRows int) int {
	return id - numRows
}

// ColNode maps a column index to its node id.
func ColNode(col, numRows int) int {
	return col + numRows
}
