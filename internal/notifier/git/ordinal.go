package git

import (
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

var (
	ordinalUnits = []string{
		"", "first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth", "ninth",
		"tenth", "eleventh", "twelfth", "thirteenth", "fourteenth", "fifteenth", "sixteenth",
		"seventeenth", "eighteenth", "nineteenth",
	}
	cardinalTens = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
	ordinalTens  = []string{"", "", "twentieth", "thirtieth", "fortieth", "fiftieth", "sixtieth", "seventieth", "eightieth", "ninetieth"}
)

// OrdinalWord spells n as an English ordinal ("first", "twenty-second").
// Numbers of 100 and above use digits ("101st").
func OrdinalWord(n int) string {
	switch {
	case n <= 0 || n >= 100:
		return humanize.Ordinal(n)
	case n < 20:
		return ordinalUnits[n]
	case n%10 == 0:
		return ordinalTens[n/10]
	default:
		return cardinalTens[n/10] + "-" + ordinalUnits[n%10]
	}
}

// OrdinalLabel names the commit at zero-based position i
func OrdinalLabel(i int) string {
	if i == 0 {
		return "Latest commit:"
	}
	return capitalize(OrdinalWord(i+1)) + " latest commit:"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
