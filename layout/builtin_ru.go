package layout

import "github.com/dasdy/vkeymap/keys"

func ruJcuken() *Family {
	numbers := append(usNumbers(),
		key2(1, keys.Left, keys.Up),
		key2(1, keys.Right, keys.Down),
	)
	top := []WKey{
		key2(1, c('Й'), c('`')),
		key2(1, c('Ц'), c('~')),
		key2(1, c('У'), keys.Euro),
		key2(1, c('К'), c('£')),
		key3(1, c('Е'), c('\\'), chars('Е', 'Ё')),
		key2(1, c('Н'), c('|')),
		key2(1, c('Г'), c('{')),
		key2(1, c('Ш'), c('}')),
		key2(1, c('Щ'), c('[')),
		key2(1, c('З'), c(']')),
		key2(1, c('Х'), c(']')),
		key1(1.5, keys.Backspace),
	}
	mid := []WKey{
		key2(1, c('Ф'), c('<')),
		key2(1, c('Ы'), c('>')),
		key2(1, c('В'), c('=')),
		key2(1, c('А'), c('+')),
		key2(1, c('П'), c('×')),
		key2(1, c('Р'), c('÷')),
		key2(1, c('О'), c('°')),
		key2(1, c('Л'), c(';')),
		key2(1, c('Д'), c(':')),
		key2(1, c('Ж'), c(':')),
		key2(1, c('Э'), c(':')),
		key1(1.5, keys.Return),
	}
	low := []WKey{
		key1(1, keys.Shift),
		key2(1, c('Я'), keys.EmoticonSmile),
		key2(1, c('Ч'), keys.EmoticonWink),
		key2(1, c('С'), keys.EmoticonFrown),
		key2(1, c('М'), keys.EmoticonCry),
		key2(1, c('И'), keys.EmoticonYuck),
		key2(1, c('Т'), keys.EmoticonGasp),
		key3(1, c('Ь'), keys.EmoticonHeart, chars('Ь', 'Ъ')),
		key2(1, c('Б'), c('/')),
		key2(1, c('Ю'), c('?')),
		key3(1, c('.'), c(','), chars('.', ',', '/', '\\')),
		key1(1.5, keys.Shift),
	}

	def, url, email := standardBottomRows(usDotCom)

	return mustFamily(Info{
		Name:               "ru йцукен",
		DefaultLanguage:    "ru",
		PrimaryID:          LangEnglish,
		SecondaryID:        SecondaryRegionalQwerty,
		SymbolKeyLabel:     defaultSymbolLabel,
		NoLanguageKeyLabel: hairJoin("R", "u"),
		TabX:               0,
		SymbolX:            1,
		ReturnX:            11,
		ReturnY:            2,
	}, [4]Row{row(numbers...), row(top...), row(mid...), row(low...)}, def, url, email)
}
