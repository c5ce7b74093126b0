package layout

import (
	"slices"

	"github.com/dasdy/vkeymap/keys"
)

func frAzerty() *Family {
	dotCom := []keys.Key{keys.DotCom, keys.DotFr, keys.DotNet, keys.DotOrg, keys.DotEdu}

	numbers := []WKey{
		key2(-0.5, c('&'), c('1')),
		key3(1, c('&'), c('1'), chars('1', '&', '¹', '¼', '½')),
		key3(1, c('É'), c('2'), chars('2', 'É', '²')),
		key3(1, c('"'), c('3'), chars('3', '"', '³', '¾', '“', '”', '«', '»')),
		key3(1, c('\''), c('4'), chars('4', '\'', '‘', '’')),
		key3(1, c('('), c('5'), chars('5', '(', '[', '{')),
		key3(1, c('-'), c('6'), chars('6', '-', '±', '¬')),
		key3(1, c('È'), c('7'), chars('7', 'È', '`')),
		key3(1, c(')'), c('8'), chars('8', ')', ']', '}')),
		key3(1, c('Ç'), c('9'), chars('9', 'Ç', '¢', '$', '€', '£', '¥', '¤')),
		key3(1, c('À'), c('0'), chars('0', 'À', '%', '‰')),
		key1(-1, keys.Backspace),
	}
	top := []WKey{
		key3(1, c('A'), c('~'), extA),
		key3(1, c('Z'), c('#'), extZ),
		key3(1, c('E'), keys.Euro, extE),
		key3(1, c('R'), c('$'), extR),
		key3(1, c('T'), c('\\'), extT),
		key3(1, c('Y'), c('|'), extY),
		key3(1, c('U'), c('{'), extU),
		key3(1, c('I'), c('}'), extI),
		key3(1, c('O'), c('['), extO),
		key3(1, c('P'), c(']'), extP),
		key1(1.5, keys.Backspace),
	}
	mid := []WKey{
		key2(-0.5, c('Q'), c('<')),
		key2(1, c('Q'), c('<')),
		key3(1, c('S'), c('>'), extS),
		key3(1, c('D'), c('='), extD),
		key2(1, c('F'), c('+')),
		key3(1, c('G'), c('×'), extG),
		key2(1, c('H'), c('÷')),
		key2(1, c('J'), c('%')),
		key2(1, c('K'), c('°')),
		key3(1, c('L'), c('¨'), extL),
		key3(1, c('M'), c('^'), extM),
		key1(1, keys.Return),
	}
	low := []WKey{
		key1(1, keys.Shift),
		key2(1, c('W'), keys.EmoticonSmile),
		key3(1, c('X'), keys.EmoticonWink, extOptions),
		key3(1, c('C'), keys.EmoticonFrown, extC),
		key2(1, c('V'), keys.EmoticonCry),
		key3(1, c('B'), keys.EmoticonYuck, extToggleLanguage),
		key3(1, c('N'), keys.EmoticonGasp, extN),
		key3(1, c(','), c('?'), chars(',', '?', '¿')),
		key3(1, c('.'), c(';'), chars('.', ';', '•', '…')),
		key3(1, c(':'), c('/'), chars(':', '/', '\\')),
		key1(1.5, keys.Shift),
	}

	// The azerty bottom rows keep '@' on the right, so the email row only
	// shortens the space bar.
	head := []WKey{key1(1, keys.Tab), key1(2, keys.Symbol), nokey}
	tail := []WKey{
		key3(1, c('@'), c('_'), chars('@', '_')),
		key3(1, c('!'), c('*'), chars('!', '*', '¡')),
		key3(1.5, keys.Hide, keys.Hide, extHide),
	}
	dotComKey := key3(1, keys.DotCom, keys.DotCom, dotCom)

	def := row(slices.Concat(head, []WKey{nokey, key1(spaceSize, keys.Space), nokey}, tail)...)
	url := row(slices.Concat(head, []WKey{key1(1, c('/')), key1(spaceSize-2, keys.Space), dotComKey}, tail)...)
	email := row(slices.Concat(head, []WKey{nokey, key1(spaceSize-1, keys.Space), dotComKey}, tail)...)

	return mustFamily(Info{
		Name:               "fr azerty",
		DefaultLanguage:    "fr",
		PrimaryID:          LangFrench,
		SecondaryID:        SecondaryRegionalQwerty,
		SymbolKeyLabel:     defaultSymbolLabel,
		NoLanguageKeyLabel: hairJoin("A", "z", "y"),
		TabX:               0,
		SymbolX:            1,
		ReturnX:            11,
		ReturnY:            2,
		NeedNumLock:        true,
	}, [4]Row{row(numbers...), row(top...), row(mid...), row(low...)}, def, url, email)
}
