package layout

import "github.com/dasdy/vkeymap/keys"

var usDotCom = []keys.Key{keys.DotCom, keys.DotNet, keys.DotOrg, keys.DotEdu}

func usNumbers() []WKey {
	return []WKey{
		key3(1, c('1'), c('!'), chars('1', '!', '¹', '¼', '½', '¡')),
		key3(1, c('2'), c('@'), chars('2', '@', '²')),
		key3(1, c('3'), c('#'), chars('3', '#', '³', '¾')),
		key3(1, c('4'), c('$'), chars('4', '$', '€', '£', '¥', '¢', '¤')),
		key3(1, c('5'), c('%'), chars('5', '%', '‰')),
		key3(1, c('6'), c('^'), chars('6', '^')),
		key3(1, c('7'), c('&'), chars('7', '&')),
		key3(1, c('8'), c('*'), chars('8', '*')),
		key3(1, c('9'), c('('), chars('9', '(', '[', '{')),
		key3(1, c('0'), c(')'), chars('0', ')', ']', '}')),
	}
}

// numberRow frames ten number keys with the invisible zones merging into the
// row below.
func numberRow(numbers []WKey) Row {
	cells := append([]WKey{key2(-0.5, c('Q'), c('['))}, numbers...)

	return row(append(cells, key1(-0.5, keys.Backspace))...)
}

// standardBottomRows are the bottom rows shared by the families with quote and
// dash keys right of the space bar.
func standardBottomRows(dotCom []keys.Key) (Row, Row, Row) {
	return bottomRows(key3(1, c('/'), c('/'), extURL), dotCom,
		key3(1, c('\''), c('"'), extSingleAndDoubleQuote),
		key3(1, c('-'), c('_'), extMinusUnderscore),
		key3(1, keys.Hide, keys.Hide, extHide),
	)
}

func usQwerty() *Family {
	top := []WKey{
		key2(1, c('Q'), c('`')),
		key2(1, c('W'), c('~')),
		key3(1, c('E'), keys.Euro, extE),
		key3(1, c('R'), c('£'), extR),
		key3(1, c('T'), c('\\'), extT),
		key3(1, c('Y'), c('|'), extY),
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
		key3(1, c('D'), c('='), extD),
		key2(1, c('F'), c('+')),
		key3(1, c('G'), c('×'), extG),
		key2(1, c('H'), c('÷')),
		key2(1, c('J'), c('°')),
		key2(1, c('K'), c(';')),
		key3(1, c('L'), c(':'), extL),
		key1(1.5, keys.Return),
	}
	low := []WKey{
		key1(1, keys.Shift),
		key3(1, c('Z'), keys.EmoticonSmile, extZ),
		key3(1, c('X'), keys.EmoticonWink, extOptions),
		key3(1, c('C'), keys.EmoticonFrown, extC),
		key2(1, c('V'), keys.EmoticonCry),
		key3(1, c('B'), keys.EmoticonYuck, extToggleLanguage),
		key3(1, c('N'), keys.EmoticonGasp, extN),
		key3(1, c('M'), keys.EmoticonHeart, extM),
		key3(1, c(','), c('/'), extCommaSlash),
		key3(1, c('.'), c('?'), extPeriodQuestion),
		key1(1, keys.Shift),
	}

	def, url, email := standardBottomRows(usDotCom)

	return mustFamily(Info{
		Name:               "us qwerty",
		DefaultLanguage:    "en",
		PrimaryID:          LangEnglish,
		SecondaryID:        SecondaryRegionalQwerty,
		SymbolKeyLabel:     defaultSymbolLabel,
		NoLanguageKeyLabel: hairJoin("Q", "w", "y"),
		TabX:               0,
		SymbolX:            1,
		ReturnX:            10,
		ReturnY:            2,
	}, [4]Row{numberRow(usNumbers()), row(top...), row(mid...), row(low...)}, def, url, email)
}

func usDvorak() *Family {
	top := []WKey{
		key3(1, c(','), c('/'), extCommaSlash),
		key3(1, c('.'), c('?'), extPeriodQuestion),
		key3(1, c('P'), c('`'), extP),
		key3(1, c('Y'), c('~'), extY),
		key2(1, c('F'), c('\\')),
		key3(1, c('G'), c('|'), extG),
		key3(1, c('C'), c('°'), extC),
		key3(1, c('R'), c(':'), extR),
		key3(1, c('L'), c(';'), extL),
		key1(1, keys.Backspace),
	}
	mid := []WKey{
		key2(-0.5, c('A'), c('<')),
		key3(1, c('A'), c('<'), extA),
		key3(1, c('O'), c('>'), extO),
		key3(1, c('E'), keys.Euro, extE),
		key3(1, c('U'), c('£'), extU),
		key3(1, c('I'), c('{'), extI),
		key3(1, c('D'), c('}'), extD),
		key2(1, c('H'), c('[')),
		key3(1, c('T'), c(']'), extT),
		key3(1, c('N'), c('×'), extN),
		key3(1, c('S'), c('÷'), extS),
		key1(1.5, keys.Return),
	}
	low := []WKey{
		nokey,
		key1(1, keys.Shift),
		key2(1, c('Q'), keys.EmoticonSmile),
		key2(1, c('J'), keys.EmoticonWink),
		key2(1, c('K'), keys.EmoticonFrown),
		key3(1, c('X'), keys.EmoticonCry, extOptions),
		key3(1, c('B'), keys.EmoticonYuck, extToggleLanguage),
		key3(1, c('M'), keys.EmoticonGasp, extM),
		key2(1, c('W'), c('+')),
		key2(1, c('V'), c('=')),
		key1(1, keys.Shift),
	}

	def, url, email := standardBottomRows(usDotCom)

	return mustFamily(Info{
		Name:               "us dvorak",
		DefaultLanguage:    "en",
		PrimaryID:          LangEnglish,
		SecondaryID:        SecondaryRegionalQwerty,
		SymbolKeyLabel:     defaultSymbolLabel,
		NoLanguageKeyLabel: hairJoin("D", "v", "k"),
		TabX:               0,
		SymbolX:            1,
		ReturnX:            11,
		ReturnY:            2,
	}, [4]Row{numberRow(usNumbers()), row(top...), row(mid...), row(low...)}, def, url, email)
}
