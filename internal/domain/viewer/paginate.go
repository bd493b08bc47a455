package viewer

// Page ventana de resultados ya acotada.
type Page[T any] struct {
	Items     []T
	Index     int // índice de página efectivo (base 0)
	Size      int
	Total     int
	PageCount int
}

// Paginate recorta items a la página pedida. Un índice negativo se trata como 0 y uno
// más allá del final se ajusta a la última página. size debe ser positivo.
func Paginate[T any](items []T, index, size int) Page[T] {
	if size <= 0 {
		size = 1
	}
	total := len(items)
	pageCount := (total + size - 1) / size
	if index < 0 {
		index = 0
	}
	if pageCount == 0 {
		index = 0
	} else if index >= pageCount {
		index = pageCount - 1
	}

	start := index * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return Page[T]{Items: out, Index: index, Size: size, Total: total, PageCount: pageCount}
}
