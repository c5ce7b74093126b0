package layout

import "github.com/dasdy/vkeymap/keys"

var seDotCom = []keys.Key{keys.DotCom, keys.DotSe, keys.DotNet, keys.DotOrg, keys.DotEdu}

func seQwerty() *Family {
	numbers := []WKey{
		key3(1, c('1'), c('!'), chars('1', '!', '¹', '¼', '½', '¡')),
		key3(1, c('2'), c('@'), chars('2', '@', '²')),
		key3(1, c('3'), c('#'), chars('3', '#', '³', '¾')),
		key3(1, c('4'), c('¤'), chars('4', '¤', '€', '£', '¥', '¢', '$')),
		key3(1, c('5'), c('%'), chars('5', '%', '‰')),
		key3(1, c('6'), c('&'), chars('6', '&')),
		key3(1, c('7'), c('/'), chars('7', '/')),
		key3(1, c('8'), c('('), chars('8', '(')),
		key3(1, c('9'), c(')'), chars('9', ')', '[', '{')),
		key3(1, c('0'), c('?'), chars('0', '?', ']', '}')),
	}
	top := []WKey{
		key2(1, c('Q'), c('`')),
		key2(1, c('W'), c('~')),
		key3(1, c('E'), keys.Euro, extE),
		key3(1, c('R'), c('£'), extR),
		key3(1, c('T'), c('$'), extT),
		key3(1, c('Y'), c('¥'), extY),
		key3(1, c('U'), c('|'), extU),
		key3(1, c('I'), c('{'), extI),
		key3(1, c('O'), c('}'), extO),
		key3(1, c('P'), c('['), extP),
		key2(1, c('Å'), c(']')),
		key1(1, keys.Backspace),
	}
	mid := []WKey{
		key3(1, c('A'), c('<'), extA),
		key3(1, c('S'), c('>'), extS),
		key3(1, c('D'), c('='), extD),
		key2(1, c('F'), c('+')),
		key3(1, c('G'), c('×'), extG),
		key2(1, c('H'), c('÷')),
		key2(1, c('J'), c('°')),
		key2(1, c('K'), c('*')),
		key3(1, c('L'), c('^'), extL),
		key2(1, c('Ö'), c('§')),
		key2(1, c('Ä'), c('\\')),
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
		key3(1, c(','), c(';'), extCommaSlash),
		key3(1, c('.'), c(':'), extPeriodQuestion),
		key1(1, keys.Shift),
	}

	def, url, email := standardBottomRows(seDotCom)

	return mustFamily(Info{
		Name:               "se qwerty",
		DefaultLanguage:    "en",
		PrimaryID:          LangEnglish,
		SecondaryID:        SecondaryRegionalQwerty,
		SymbolKeyLabel:     defaultSymbolLabel,
		NoLanguageKeyLabel: hairJoin("S", "E", "Q", "w", "y"),
		TabX:               0,
		SymbolX:            1,
		ReturnX:            11,
		ReturnY:            2,
	}, [4]Row{numberRow(numbers), row(top...), row(mid...), row(low...)}, def, url, email)
}

func seDvorak() *Family {
	top := []WKey{
		key2(1, c('Å'), c('§')),
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
		key1(1, keys.Shift),
		key2(1, c('Ö'), keys.EmoticonSmile),
		key2(1, c('Ä'), keys.EmoticonWink),
		key2(1, c('Q'), keys.EmoticonFrown),
		key2(1, c('J'), keys.EmoticonCry),
		key2(1, c('K'), keys.EmoticonYuck),
		key3(1, c('X'), keys.EmoticonGasp, extOptions),
		key3(1, c('B'), keys.EmoticonHeart, extToggleLanguage),
		key3(1, c('M'), c('+'), extM),
		key2(1, c('W'), c('=')),
		key2(1, c('V'), c('¬')),
		key1(1, keys.Shift),
	}

	def, url, email := standardBottomRows(seDotCom)

	return mustFamily(Info{
		Name:               "se dvorak",
		DefaultLanguage:    "en",
		PrimaryID:          LangEnglish,
		SecondaryID:        SecondaryRegionalQwerty,
		SymbolKeyLabel:     defaultSymbolLabel,
		NoLanguageKeyLabel: hairJoin("S", "E", "D", "v", "k"),
		TabX:               0,
		SymbolX:            1,
		ReturnX:            11,
		ReturnY:            2,
	}, [4]Row{numberRow(usNumbers()), row(top...), row(mid...), row(low...)}, def, url, email)
}
