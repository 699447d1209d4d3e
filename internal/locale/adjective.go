package locale

// dlcAdjectives covers DLC cultures whose adjectives have no catalog entry.
var dlcAdjectives = map[string]string{
	"Civilization_Era1_Bantu":      "Bantu",
	"Civilization_Era2_Garamantes": "Garamantes",
	"Civilization_Era3_Swahili":    "Swahili",
	"Civilization_Era4_Maasai":     "Maasai",
	"Civilization_Era5_Ethiopia":   "Ethiopian",
	"Civilization_Era6_Nigeria":    "Nigerian",
}

// DefaultDLCAdjectives returns a copy of the built-in DLC adjective table,
// keyed by culture identifier.
func DefaultDLCAdjectives() map[string]string {
	out := make(map[string]string, len(dlcAdjectives))
	for k, v := range dlcAdjectives {
		out[k] = v
	}
	return out
}

// Adjectives resolves a culture's adjective: the localized string first,
// then the DLC table, then the raw key.
type Adjectives struct {
	tr  Translator
	dlc map[string]string
}

// NewAdjectives builds a resolver. A nil dlc table uses the built-in one.
func NewAdjectives(tr Translator, dlc map[string]string) *Adjectives {
	if dlc == nil {
		dlc = DefaultDLCAdjectives()
	}
	if tr == nil {
		tr = TranslatorFunc(func(key string) string { return key })
	}
	return &Adjectives{tr: tr, dlc: dlc}
}

// Adjective returns the adjective for a culture identifier and its
// string-table key.
func (a *Adjectives) Adjective(culture, key string) string {
	localized := a.tr.Localize(key)
	if localized != key {
		return localized
	}
	if adj, ok := a.dlc[culture]; ok {
		return adj
	}
	return key
}
