package layout

import (
	"strings"

	"github.com/dasdy/vkeymap/keys"
)

// spaceSize is the weight of the space bar on default bottom rows.
const spaceSize = 5

const hairSpace = "\u200a"

// Symbol key label used by most families.
const defaultSymbolLabel = "+" + hairSpace + "=" + hairSpace + "[" + hairSpace + hairSpace + "]"

// hairJoin spaces key cap letters with hair spaces.
func hairJoin(parts ...string) string {
	return strings.Join(parts, hairSpace)
}

// Long-press lists shared by several families.
var (
	extA = chars('A', 'À', 'Á', 'Â', 'Ã', 'Ä', 'Å', 'æ', 'ª')
	extC = chars('C', 'Ç', 'ć', '©', '¢')
	extD = chars('D', 'ð', '†', '‡')
	extE = chars('E', 'È', 'É', 'Ê', 'Ë', 'ę', 'ē')
	extG = chars('G', 'ğ')
	extI = chars('I', 'Ì', 'Í', 'Î', 'Ï', 'İ', 'ı')
	extL = chars('L', 'Ł')
	extM = chars('M', 'µ')
	extN = chars('N', 'ñ', 'ń')
	extO = chars('O', 'Ò', 'Ó', 'Ô', 'Õ', 'Ö', 'Ø', 'ő', 'œ', 'º', 'ω')
	extP = chars('P', '§', 'π')
	extR = chars('R', '®')
	extS = chars('S', 'š', 'Ş', 'ß', 'σ')
	extT = chars('T', '™', 'Þ')
	extU = chars('U', 'Ù', 'Ú', 'Û', 'Ü', 'ű')
	extY = chars('Y', 'Ý', 'ÿ')
	extZ = chars('Z', 'ž', 'ź', 'ż')

	extHide                 = []keys.Key{keys.ResizeTiny, keys.ResizeSmall, keys.ResizeDefault, keys.ResizeLarge}
	extSingleAndDoubleQuote = chars('\'', '"', '`', '‘', '’', '“', '”', '«', '»')
	extPeriodQuestion       = chars('.', '?', '•', '…', '¿')
	extMinusUnderscore      = chars('-', '_', '±', '¬')
	extCommaSlash           = chars(',', '/', '\\')
	extURL                  = []keys.Key{keys.HTTPColonSlashes, keys.HTTPSColonSlashes, keys.WWW}

	extToggleLanguage = []keys.Key{
		keys.SwitchToQwerty, keys.SwitchToAzerty, keys.SwitchToQwertz,
		keys.CreateDefaultKeyboards, keys.ClearDefaultKeyboards,
	}
	extOptions = []keys.Key{
		keys.ToggleSuggestions, keys.ShowXT9Regions, keys.ShowKeymapRegions,
		keys.StartStopRecording, keys.ToggleSoundFeedback,
	}
)

// Protocol identifiers written to exported layout files.
const (
	LangEnglish uint16 = 0x09
	LangFrench  uint16 = 0x0C
	LangGerman  uint16 = 0x07

	SecondaryRegionalQwerty uint16 = 0x0100
)

// bottomRows builds the default, URL and email bottom rows. The URL row puts slash
// left of a shortened space bar, the email row puts '@' there; both add a .com key
// on its right. tail holds the cells that follow.
func bottomRows(slash WKey, dotCom []keys.Key, tail ...WKey) (Row, Row, Row) {
	head := []WKey{key1(1, keys.Tab), key1(2, keys.Symbol), nokey}

	defaultRow := append(append(append([]WKey{}, head...), nokey, key1(spaceSize, keys.Space), nokey), tail...)
	urlRow := append(append(append([]WKey{}, head...),
		slash,
		key1(spaceSize-2, keys.Space),
		key3(1, keys.DotCom, keys.DotCom, dotCom)), tail...)
	emailRow := append(append(append([]WKey{}, head...),
		key1(1, c('@')),
		key1(spaceSize-2, keys.Space),
		key3(1, keys.DotCom, keys.DotCom, dotCom)), tail...)

	return row(defaultRow...), row(urlRow...), row(emailRow...)
}
