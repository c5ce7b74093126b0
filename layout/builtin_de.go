package layout

import "github.com/dasdy/vkeymap/keys"

func deQwertz() *Family {
	numbers := []WKey{
		key3(1, c('1'), c('!'), chars('1', '!', '¹', '¼', '½', '¡')),
		key3(1, c('2'), c('"'), chars('2', '"', '²', '”', '„', '“', '«', '»')),
		key3(1, c('3'), c('@'), chars('3', '@', '³', '¾')),
		key3(1, c('4'), c('$'), chars('4', '$', '€', '£', '¥', '¢', '¤')),
		key3(1, c('5'), c('%'), chars('5', '%', '‰')),
		key3(1, c('6'), c('&'), chars('6', '&')),
		key3(1, c('7'), c('/'), chars('7', '/', '\\')),
		key3(1, c('8'), c('('), chars('8', '(', '[', '{')),
		key3(1, c('9'), c(')'), chars('9', ')', ']', '}')),
		key3(1, c('0'), c('='), chars('0', '=')),
	}
	top := []WKey{
		key2(1, c('Q'), c('`')),
		key2(1, c('W'), c('~')),
		key3(1, c('E'), keys.Euro, extE),
		key3(1, c('R'), c('^'), extR),
		key3(1, c('T'), c('\\'), extT),
		key3(1, c('Z'), c('|'), extZ),
		key3(1, c('U'), c('{'), extU),
		key3(1, c('I'), c('}'), extI),
		key3(1, c('O'), c('['), extO),
		key3(1, c('P'), c(']'), extP),
		key1(1, keys.Backspace),
	}
	mid := []WKey{
		key2(-0.5, c('A'), c('<')),
		key3(1, c('A'), c('<'), extA),
		key3(1, c('S'), c('>'), extS),
		key3(1, c('D'), c('_'), extD),
		key2(1, c('F'), c('+')),
		key3(1, c('G'), c('×'), extG),
		key2(1, c('H'), c('÷')),
		key2(1, c('J'), c('°')),
		key2(1, c('K'), c('*')),
		key3(1, c('L'), c('#'), extL),
		key1(1.5, keys.Return),
	}
	low := []WKey{
		key1(1, keys.Shift),
		key3(1, c('Y'), keys.EmoticonSmile, extY),
		key3(1, c('X'), keys.EmoticonWink, extOptions),
		key3(1, c('C'), keys.EmoticonFrown, extC),
		key2(1, c('V'), keys.EmoticonCry),
		key3(1, c('B'), keys.EmoticonYuck, extToggleLanguage),
		key3(1, c('N'), keys.EmoticonGasp, extN),
		key3(1, c('M'), keys.EmoticonHeart, extM),
		key3(1, c(','), c(';'), chars(',', ';')),
		key3(1, c('.'), c(':'), chars('.', ':', '•', '…')),
		key1(1, keys.Shift),
	}

	def, url, email := bottomRows(key1(1, c('/')),
		[]keys.Key{keys.DotCom, keys.DotDe, keys.DotNet, keys.DotOrg, keys.DotEdu},
		key3(1, c('ß'), c('?'), chars('ß', '?', '¿')),
		key3(1, c('-'), c('\''), chars('-', '\'', '±', '¬', '`', '‚', '‘', '’')),
		key3(1, keys.Hide, keys.Hide, extHide),
	)

	return mustFamily(Info{
		Name:               "de qwertz",
		DefaultLanguage:    "de",
		PrimaryID:          LangGerman,
		SecondaryID:        SecondaryRegionalQwerty,
		SymbolKeyLabel:     "+" + hairSpace + "~" + hairSpace + "[" + hairSpace + hairSpace + "]",
		NoLanguageKeyLabel: hairJoin("Q", "w", "z"),
		TabX:               0,
		SymbolX:            1,
		ReturnX:            10,
		ReturnY:            2,
	}, [4]Row{numberRow(numbers), row(top...), row(mid...), row(low...)}, def, url, email)
}
