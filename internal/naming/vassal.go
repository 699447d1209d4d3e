package naming

// VassalPattern returns the prefix and suffix wrapped around a vassal's
// adjective, chosen by the era of its liege.
func VassalPattern(liegeEra int, liegeAdjective string) (prefix, suffix string) {
	switch liegeEra {
	case 1: // Ancient
		return "Subjugated ", " State"
	case 2: // Classical
		return "Tributary ", " State"
	case 3: // Medieval
		return "Feudatory ", " State"
	case 4: // Early Modern
		return "", " Viceroyalty"
	case 5: // Industrial
		return liegeAdjective + " ", " Protectorate"
	case 6: // Contemporary
		return liegeAdjective + " ", " State"
	default: // unknown or modded eras
		return "Vassal ", " State"
	}
}

// VassalName is the government name of a polity under a liege. It replaces
// whatever the polity's own government would be called.
func VassalName(adjective string, liegeEra int, liegeAdjective string) string {
	prefix, suffix := VassalPattern(liegeEra, liegeAdjective)
	return prefix + adjective + suffix
}
