package icons

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/apollo/internal/platform/errors"
)

// ErrUnknownIcon reports a name, key, codepoint or Icon value outside the
// published set.
var ErrUnknownIcon = errors.New("unknown icon")

var (
	byKey       map[string]Icon
	byName      map[string]Icon
	byCodepoint map[string]Icon
)

func init() {
	if err := buildIndexes(); err != nil {
		panic(err)
	}
}

// buildIndexes derives the reverse lookups and rejects any table that breaks
// the one-to-one correspondence between names, keys and codepoints.
func buildIndexes() error {
	byKey = make(map[string]Icon, iconCount)
	byName = make(map[string]Icon, iconCount)
	byCodepoint = make(map[string]Icon, iconCount)
	for i := Icon(1); int(i) <= iconCount; i++ {
		def := definitions[i]
		if def.Icon != i {
			return fmt.Errorf("icons: table slot %d holds %s", i, def.Icon)
		}
		if def.Key == "" || def.Name == "" || def.Codepoint == "" {
			return fmt.Errorf("icons: %d has an empty name, key or codepoint", i)
		}
		if strconv.Itoa(int(def.Rune)) != def.Codepoint {
			return fmt.Errorf("icons: %s codepoint %s does not match rune %#x", def.Name, def.Codepoint, def.Rune)
		}
		if prev, ok := byKey[def.Key]; ok {
			return fmt.Errorf("icons: key %q shared by %s and %s", def.Key, prev, i)
		}
		if prev, ok := byName[def.Name]; ok {
			return fmt.Errorf("icons: name %q shared by %s and %s", def.Name, prev, i)
		}
		if prev, ok := byCodepoint[def.Codepoint]; ok {
			return fmt.Errorf("icons: codepoint %s shared by %s and %s", def.Codepoint, prev, i)
		}
		byKey[def.Key] = i
		byName[def.Name] = i
		byCodepoint[def.Codepoint] = i
	}
	return nil
}

// Len returns the number of published icons.
func Len() int {
	return iconCount
}

// All returns every published icon in codepoint order.
func All() []Icon {
	out := make([]Icon, 0, iconCount)
	for i := Icon(1); int(i) <= iconCount; i++ {
		out = append(out, i)
	}
	return out
}

// Lookup returns the definition for icon.
func Lookup(icon Icon) (Definition, error) {
	if !icon.Valid() {
		return Definition{}, unknownIcon(icon.String())
	}
	return definitions[icon], nil
}

// MustLookup is like Lookup but panics for icons outside the published set.
func MustLookup(icon Icon) Definition {
	return icon.mustDefinition()
}

// LookupKey returns the string key for icon.
func LookupKey(icon Icon) (string, error) {
	def, err := Lookup(icon)
	if err != nil {
		return "", err
	}
	return def.Key, nil
}

// LookupCodepoint returns the decimal codepoint string for icon.
func LookupCodepoint(icon Icon) (string, error) {
	def, err := Lookup(icon)
	if err != nil {
		return "", err
	}
	return def.Codepoint, nil
}

// ByKey resolves a kebab-case key.
func ByKey(key string) (Icon, bool) {
	icon, ok := byKey[key]
	return icon, ok
}

// ByName resolves a PascalCase name.
func ByName(name string) (Icon, bool) {
	icon, ok := byName[name]
	return icon, ok
}

// ByCodepoint resolves a decimal codepoint string.
func ByCodepoint(codepoint string) (Icon, bool) {
	icon, ok := byCodepoint[codepoint]
	return icon, ok
}

// Parse resolves a free-form reference: a key, a name, a decimal codepoint,
// or a hex codepoint written as U+F11C or 0xf11c.
func Parse(ref string) (Icon, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Unspecified, apperrors.New(apperrors.CodeIconRefEmpty, "icon reference is empty")
	}
	if icon, ok := byKey[ref]; ok {
		return icon, nil
	}
	if icon, ok := byName[ref]; ok {
		return icon, nil
	}
	if icon, ok := byCodepoint[ref]; ok {
		return icon, nil
	}
	if hex, ok := hexDigits(ref); ok {
		if value, err := strconv.ParseUint(hex, 16, 32); err == nil {
			if icon, ok := byCodepoint[strconv.FormatUint(value, 10)]; ok {
				return icon, nil
			}
		}
	}
	return Unspecified, unknownIcon(ref)
}

// MustParse is like Parse but panics on unknown references.
func MustParse(ref string) Icon {
	icon, err := Parse(ref)
	if err != nil {
		panic(err)
	}
	return icon
}

func hexDigits(ref string) (string, bool) {
	upper := strings.ToUpper(ref)
	for _, prefix := range []string{"U+", "0X"} {
		if strings.HasPrefix(upper, prefix) {
			return ref[len(prefix):], true
		}
	}
	return "", false
}

func unknownIcon(ref string) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeIconUnknown,
		fmt.Sprintf("icon %s is not registered", ref),
		map[string]string{"Ref": ref},
		ErrUnknownIcon,
	)
}
