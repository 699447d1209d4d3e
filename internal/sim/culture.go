package sim

import (
	"strconv"

	"github.com/talgya/cognomen/internal/naming"
)

// Culture is a playable culture of one era.
type Culture struct {
	ID           string // e.g. "Civilization_Era2_Celts"
	Name         string // rough name shown by the host, e.g. "Celts"
	AdjectiveKey string
}

func culture(id, name string) Culture {
	return Culture{ID: id, Name: name, AdjectiveKey: "FactionAdjective_" + id}
}

// EraNames indexes era names by era index.
var EraNames = []string{
	"Neolithic",
	"Ancient",
	"Classical",
	"Medieval",
	"Early Modern",
	"Industrial",
	"Contemporary",
}

// EraName returns the era's name, or "Era N" beyond the known eras.
func EraName(era int) string {
	if era >= 0 && era < len(EraNames) {
		return EraNames[era]
	}
	return "Era " + strconv.Itoa(era)
}

// culturesByEra lists the cultures each era offers. The last culture of each
// era after the Neolithic is a DLC culture without a catalog adjective.
var culturesByEra = [][]Culture{
	{
		culture("Civilization_Era0_Tribe", "Nomadic Tribe"),
	},
	{
		culture("Civilization_Era1_Egypt", "Egyptians"),
		culture("Civilization_Era1_Babylon", "Babylonians"),
		culture("Civilization_Era1_Harappa", "Harappans"),
		culture("Civilization_Era1_Hittite", "Hittites"),
		culture("Civilization_Era1_Phoenicia", "Phoenicians"),
		culture("Civilization_Era1_Bantu", "Bantu"),
	},
	{
		culture("Civilization_Era2_Celts", "Celts"),
		culture("Civilization_Era2_Rome", "Romans"),
		culture("Civilization_Era2_Persia", "Persians"),
		culture("Civilization_Era2_Maurya", "Mauryas"),
		culture("Civilization_Era2_Greece", "Greeks"),
		culture("Civilization_Era2_Garamantes", "Garamantes"),
	},
	{
		culture("Civilization_Era3_Franks", "Franks"),
		culture("Civilization_Era3_Byzantium", "Byzantines"),
		culture("Civilization_Era3_Khmer", "Khmer"),
		culture("Civilization_Era3_Norse", "Norsemen"),
		culture("Civilization_Era3_Umayyad", "Umayyads"),
		culture("Civilization_Era3_Swahili", "Swahili"),
	},
	{
		culture("Civilization_Era4_England", "English"),
		culture("Civilization_Era4_Holland", "Dutch"),
		culture("Civilization_Era4_Ming", "Ming"),
		culture("Civilization_Era4_Mughal", "Mughals"),
		culture("Civilization_Era4_Ottoman", "Ottomans"),
		culture("Civilization_Era4_Maasai", "Maasai"),
	},
	{
		culture("Civilization_Era5_Britain", "British"),
		culture("Civilization_Era5_France", "French"),
		culture("Civilization_Era5_Germany", "Germans"),
		culture("Civilization_Era5_Japan", "Japanese"),
		culture("Civilization_Era5_Russia", "Russians"),
		culture("Civilization_Era5_Ethiopia", "Ethiopians"),
	},
	{
		culture("Civilization_Era6_Brazil", "Brazilians"),
		culture("Civilization_Era6_China", "Chinese"),
		culture("Civilization_Era6_India", "Indians"),
		culture("Civilization_Era6_Turkey", "Turks"),
		culture("Civilization_Era6_USA", "Americans"),
		culture("Civilization_Era6_Nigeria", "Nigerians"),
	},
}

// MaxEra is the last era the reference match plays.
var MaxEra = len(culturesByEra) - 1

// Persona is an AI leader.
type Persona struct {
	Name   string
	Gender naming.Gender
}

var personas = []Persona{
	{"Boudicca", naming.Female},
	{"Arthur", naming.Male},
	{"Hatshepsut", naming.Female},
	{"Cyrus", naming.Male},
	{"Livia", naming.Female},
	{"Ashoka", naming.Male},
	{"Theodora", naming.Female},
	{"Saladin", naming.Male},
	{"Elizabeth", naming.Female},
	{"Mutsuhito", naming.Male},
	{"Catherine", naming.Female},
	{"Mansa Musa", naming.Male},
	{"Cleopatra", naming.Female},
	{"Ramesses", naming.Male},
	{"Wu Zetian", naming.Female},
	{"Charlemagne", naming.Male},
}

// minorNames names the independent peoples that never get generated names.
var minorNames = []string{
	"Highland Clans",
	"River Folk",
	"Steppe Riders",
	"Coastal Villages",
	"Forest Tribes",
}

// civicUnlockEra gives the era in which each government civic (1-based)
// becomes available.
var civicUnlockEra = map[int]int{
	1: 1, // Founding Myths
	2: 1, // Leadership
	3: 2, // Political Entitlement
	4: 3, // Political Influence
	5: 4, // Monarchy Power
	6: 5, // Republic Evolution
	7: 5, // Aristocracy Evolution
}
