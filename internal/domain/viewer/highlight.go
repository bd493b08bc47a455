package viewer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SegmentKind marca si un segmento coincide con la consulta.
type SegmentKind string

const (
	SegmentPlain   SegmentKind = "plain"
	SegmentMatched SegmentKind = "matched"
)

// Segment trozo contiguo del texto original.
type Segment struct {
	Text string
	Kind SegmentKind
}

// Highlight divide text en cada ocurrencia literal de query, sin distinguir mayúsculas.
// Las ocurrencias se buscan de izquierda a derecha y sin solaparse. La consulta nunca se
// interpreta como patrón: "(" o "." coinciden solo consigo mismos.
// Con consulta vacía o solo espacios devuelve un único segmento plain con el texto completo.
// Concatenar los segmentos reproduce text exactamente.
func Highlight(text, query string) []Segment {
	if strings.TrimSpace(query) == "" || text == "" {
		return []Segment{{Text: text, Kind: SegmentPlain}}
	}

	var segments []Segment
	plainStart := 0
	for i := 0; i < len(text); {
		if n := matchAt(text[i:], query); n > 0 {
			if i > plainStart {
				segments = append(segments, Segment{Text: text[plainStart:i], Kind: SegmentPlain})
			}
			segments = append(segments, Segment{Text: text[i : i+n], Kind: SegmentMatched})
			i += n
			plainStart = i
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	if plainStart < len(text) {
		segments = append(segments, Segment{Text: text[plainStart:], Kind: SegmentPlain})
	}
	return segments
}

// matchAt devuelve cuántos bytes de s coinciden con query al inicio (comparación runa a runa
// en minúsculas), o 0 si no hay coincidencia.
func matchAt(s, query string) int {
	consumed := 0
	for _, qr := range query {
		if consumed >= len(s) {
			return 0
		}
		sr, size := utf8.DecodeRuneInString(s[consumed:])
		if unicode.ToLower(sr) != unicode.ToLower(qr) {
			return 0
		}
		consumed += size
	}
	return consumed
}
