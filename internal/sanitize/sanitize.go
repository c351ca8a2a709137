// Package sanitize repairs mis-decoded punctuation in free-text survey fields.
//
// Monthly exports pass through several hands (Forms, Excel, CSV) and arrive
// with cp1252 control-range bytes and Unicode smart punctuation mixed into
// otherwise plain text. Clean collapses those to stable equivalents so the
// rest of the pipeline compares and renders text predictably.
package sanitize

import "strings"

// replacer maps mis-decoded byte sequences and smart punctuation to their
// normalized forms. Dash variants normalize to their proper glyphs, so
// re-applying the table is a no-op.
var replacer = strings.NewReplacer(
	"\ufffd", "'", // replacement glyph from a failed decode, almost always an apostrophe
	"\u0091", "'", // cp1252 left single quote decoded as latin-1
	"\u0092", "'", // cp1252 right single quote decoded as latin-1
	"\u0093", `"`, // cp1252 left double quote decoded as latin-1
	"\u0094", `"`, // cp1252 right double quote decoded as latin-1
	"\u0096", "\u2013", // cp1252 en dash decoded as latin-1
	"\u0097", "\u2014", // cp1252 em dash decoded as latin-1
	"\u2018", "'", // left single quotation mark
	"\u2019", "'", // right single quotation mark
	"\u201c", `"`, // left double quotation mark
	"\u201d", `"`, // right double quotation mark
)

// Clean normalizes mis-decoded punctuation in s. Idempotent: cleaning
// already-clean text returns it unchanged.
func Clean(s string) string {
	return replacer.Replace(s)
}

// CleanRow cleans every field of a CSV row in place and returns it.
func CleanRow(fields []string) []string {
	for i, f := range fields {
		fields[i] = Clean(f)
	}
	return fields
}
