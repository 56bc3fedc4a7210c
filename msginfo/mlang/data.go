// Package mlang names the language a set of messages is written in.
//
// The officially supported languages have fixed display names. Any other
// text is kept verbatim, usually an ISO 639-3 code, so unknown languages
// round-trip without loss.
package mlang

type Language string

// All officially supported languages in one game or another.
const (
	English            = Language("English")
	Spanish            = Language("Spanish")
	German             = Language("German")
	Italian            = Language("Italian")
	French             = Language("French")
	Japanese           = Language("Japanese")
	Korean             = Language("Korean")
	ChineseSimplified  = Language("ChineseSimplified")
	ChineseTraditional = Language("ChineseTraditional")
)

var official = []Language{
	English,
	Spanish,
	German,
	Italian,
	French,
	Japanese,
	Korean,
	ChineseSimplified,
	ChineseTraditional,
}
