package mlang

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParse(t *testing.T) {
	assert.Equal(t, English, Parse(English.String()))
	assert.Equal(t, "Klingon", Parse("Klingon").String())
	assert.False(t, Parse("Klingon").IsOfficial())

	for _, l := range Official() {
		assert.Equal(t, l, Parse(l.String()))
		assert.True(t, l.IsOfficial())
	}
}

func TestOfficial(t *testing.T) {
	languages := Official()
	assert.Len(t, languages, 9)
	assert.Equal(t, English, languages[0])
	assert.Equal(t, ChineseTraditional, languages[8])

	languages[0] = Parse("tlh")
	assert.Equal(t, English, Official()[0])
}

func TestLanguage_JSON(t *testing.T) {
	bs, err := json.Marshal(map[string]Language{"language": ChineseSimplified})
	require.NoError(t, err)
	assert.Equal(t, `{"language":"ChineseSimplified"}`, string(bs))

	var decoded struct {
		Language Language `json:"language"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"language":"nld"}`), &decoded))
	assert.Equal(t, Parse("nld"), decoded.Language)
}

func TestFromCode(t *testing.T) {
	expectedValues := map[string]Language{
		"en":      English,
		"eng":     English,
		"spa":     Spanish,
		"de-AT":   German,
		"it":      Italian,
		"fra":     French,
		"ja":      Japanese,
		"kor":     Korean,
		"zh":      ChineseSimplified,
		"zh-Hans": ChineseSimplified,
		"zh-Hant": ChineseTraditional,
		"nl":      Language("nld"),
		"tlh":     Language("tlh"),
		"Klingon": Language("Klingon"),
		"und":     Language("und"),
		"und-JP":  Language("und-JP"),
	}
	for code, expected := range expectedValues {
		assert.Equalf(t, expected, FromCode(code), "FromCode(%q)", code)
	}
}

func TestLanguage_Tag(t *testing.T) {
	tag, ok := English.Tag()
	assert.True(t, ok)
	assert.Equal(t, language.English, tag)

	tag, ok = ChineseTraditional.Tag()
	assert.True(t, ok)
	assert.Equal(t, language.TraditionalChinese, tag)

	tag, ok = Parse("nld").Tag()
	assert.True(t, ok)
	assert.Equal(t, Language("nld"), FromTag(tag))

	assert.Equal(t, Language("und"), FromTag(language.Und))

	_, ok = Parse("Klingon").Tag()
	assert.False(t, ok)
}
