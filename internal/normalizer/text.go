package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var reSpaces = regexp.MustCompile(`\s+`)

// letter variants typed interchangeably in Arabic place and branch names
var arabicFold = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ٱ", "ا",
	"ة", "ه",
	"ى", "ي",
	"ؤ", "و",
	"ئ", "ي",
	"ـ", "", // tatweel
)

// StripMarks removes combining marks: Latin accents and Arabic tashkeel
func StripMarks(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// Fold maps s to the form used for comparisons: no marks, unified Arabic
// letter variants, lowercase, single spaces
func Fold(s string) string {
	s = StripMarks(s)
	s = arabicFold.Replace(s)
	s = strings.ToLower(s)
	return reSpaces.ReplaceAllString(strings.TrimSpace(s), " ")
}

// ASCII transliterates the folded form of s, so Latin input can be compared
// against Arabic names
func ASCII(s string) string {
	s = strings.ToLower(unidecode.Unidecode(Fold(s)))
	return reSpaces.ReplaceAllString(strings.TrimSpace(s), " ")
}

// IsASCII reports whether s holds only ASCII runes
func IsASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
