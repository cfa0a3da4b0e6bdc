package domain

// Page addresses one window of a paginated listing. Numbers are 1-indexed.
type Page struct {
	Number int
	Size   int
}

func NewPage(pageNumber, pageSize int) Page {
	pNumber := 1
	if pageNumber > 0 {
		pNumber = pageNumber
	}

	pSize := 10
	if pageSize > 0 {
		pSize = pageSize
	}

	return Page{
		Number: pNumber,
		Size:   pSize,
	}
}

// Count returns the number of pages needed for total entries, never less
// than one.
func (p Page) Count(total int) int {
	if total <= 0 {
		return 1
	}
	count := (total + p.Size - 1) / p.Size
	if count < 1 {
		count = 1
	}
	return count
}
