package table

// Paginate returns the 1-based page of items holding size entries. Pages past
// the end, page < 1 and size < 1 all yield an empty slice.
func Paginate[T any](items []T, size, page int) []T {
	if size < 1 || page < 1 || page-1 >= PageCount(len(items), size) {
		return []T{}
	}
	start := (page - 1) * size
	end := len(items)
	if size < end-start {
		end = start + size
	}
	return items[start:end:end]
}

// PageCount returns ceil(n/size), or 0 when size < 1.
func PageCount(n, size int) int {
	if size < 1 || n <= 0 {
		return 0
	}
	pages := n / size
	if n%size != 0 {
		pages++
	}
	return pages
}
