package database

// PageOffset converts a 1-based page number into a row offset. Values
// below 1 select the first page.
func PageOffset(page, size int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * size
}
