// Package icons is the Apollo icon identifier registry.
//
// Every icon in the set is a value of the closed Icon enumeration. Each value
// maps one-to-one to a kebab-case key (font ligature, CSS class and sprite
// symbol name) and to a decimal codepoint in the Unicode private use area that
// selects the glyph in the Apollo icon font. The table is generated from
// manifest.yaml and never changes at runtime; published key and codepoint
// pairs are part of the rendering contract and must not be reassigned.
package icons
