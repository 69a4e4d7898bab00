package parser

import "strings"

// latin1Letters are the named entities of the accented Latin-1 letters. Text
// produced by older editors spells these letters out as entities, and such a
// sequence counts as one letter of the surrounding word.
var latin1Letters = map[string]rune{
	"Agrave": 'À', "Aacute": 'Á', "Acirc": 'Â', "Atilde": 'Ã', "Auml": 'Ä',
	"Aring": 'Å', "AElig": 'Æ', "Ccedil": 'Ç', "Egrave": 'È', "Eacute": 'É',
	"Ecirc": 'Ê', "Euml": 'Ë', "Igrave": 'Ì', "Iacute": 'Í', "Icirc": 'Î',
	"Iuml": 'Ï', "ETH": 'Ð', "Ntilde": 'Ñ', "Ograve": 'Ò', "Oacute": 'Ó',
	"Ocirc": 'Ô', "Otilde": 'Õ', "Ouml": 'Ö', "Oslash": 'Ø', "Ugrave": 'Ù',
	"Uacute": 'Ú', "Ucirc": 'Û', "Uuml": 'Ü', "Yacute": 'Ý', "THORN": 'Þ',
	"szlig": 'ß', "agrave": 'à', "aacute": 'á', "acirc": 'â', "atilde": 'ã',
	"auml": 'ä', "aring": 'å', "aelig": 'æ', "ccedil": 'ç', "egrave": 'è',
	"eacute": 'é', "ecirc": 'ê', "euml": 'ë', "igrave": 'ì', "iacute": 'í',
	"icirc": 'î', "iuml": 'ï', "eth": 'ð', "ntilde": 'ñ', "ograve": 'ò',
	"oacute": 'ó', "ocirc": 'ô', "otilde": 'õ', "ouml": 'ö', "oslash": 'ø',
	"ugrave": 'ù', "uacute": 'ú', "ucirc": 'û', "uuml": 'ü', "yacute": 'ý',
	"thorn": 'þ', "yuml": 'ÿ',
}

// longest entity name plus '&' and ';'
const maxLatin1Len = len("&Ntilde;")

// latin1Entity reports the byte length of the Latin-1 letter entity starting
// at line[pos], if there is one. Entity names are case sensitive.
func latin1Entity(line string, pos int) (int, bool) {
	if pos >= len(line) || line[pos] != '&' {
		return 0, false
	}
	rest := line[pos+1:]
	end := strings.IndexByte(rest, ';')
	if end < 1 || end+2 > maxLatin1Len {
		return 0, false
	}
	if _, ok := latin1Letters[rest[:end]]; !ok {
		return 0, false
	}
	return end + 2, true
}
