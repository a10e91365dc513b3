package cloze

// Allocate renumbers the blanks of all blocks using a single counter starting at 0,
// in block order then part order. It returns the new blocks and the number of blanks.
// The input is not modified.
func Allocate(blocks [][]Part) ([][]Part, int) {
	result := make([][]Part, len(blocks))
	next := 0
	for i, parts := range blocks {
		result[i], next = allocateBlock(parts, next)
	}
	return result, next
}

// allocateBlock numbers the blanks of a block starting at next and returns the next free index.
func allocateBlock(parts []Part, next int) ([]Part, int) {
	result := make([]Part, len(parts))
	for i, part := range parts {
		if part.IsBlank() {
			part = Part{
				Blank: &Blank{
					Answer: part.Blank.Answer,
					Index:  next,
				},
			}
			next++
		}
		result[i] = part
	}
	return result, next
}
