package mapping

// ReplaceResult reports the outcome of a diff-based bulk replace for one
// event. A repeated call with the same status set yields {Added:0, Removed:0}.
type ReplaceResult struct {
	Added   int
	Removed int
}
