package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folder descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un texto para búsqueda: minúsculas y sin acentos ("Álcool Gel" -> "alcool gel").
// Los datos del catálogo llegan en español/portugués, por lo que la búsqueda no puede
// depender de que el usuario escriba los diacríticos.
func Fold(s string) string {
	out, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Contains reporta si needle aparece en haystack ignorando mayúsculas y acentos.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
