package toast

import "strings"

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escape makes s safe for both attribute values and element text. Invalid
// UTF-8 becomes U+FFFD and runes outside the XML Char production are dropped.
func escape(s string) string {
	return markupEscaper.Replace(strings.Map(xmlChar, strings.ToValidUTF8(s, "�")))
}

// xmlChar keeps r when XML 1.0 allows it in a document and drops it otherwise.
func xmlChar(r rune) rune {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return r
	case r >= 0x20 && r <= 0xD7FF:
		return r
	case r >= 0xE000 && r <= 0xFFFD:
		return r
	case r >= 0x10000 && r <= 0x10FFFF:
		return r
	default:
		return -1
	}
}

// fileURI turns a local path into the escaped file:/// source the shell expects.
func fileURI(path string) string {
	return "file:///" + escape(path)
}
