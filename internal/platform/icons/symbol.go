package icons

const symbolPrefix = FontFamily + "-"

// SymbolID returns the sprite symbol id for icon, e.g. "apollo-add".
// It panics when icon is not published.
func SymbolID(icon Icon) string {
	return symbolPrefix + icon.Key()
}

// ClassName returns the font class for icon under prefix, e.g. "apollo-add".
// An empty prefix uses FontFamily.
func ClassName(prefix string, icon Icon) string {
	if prefix == "" {
		prefix = FontFamily
	}
	return prefix + "-" + icon.Key()
}
