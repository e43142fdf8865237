package rules

// Personality archetypes bias the AI research stage.
type Personality uint8

const (
	PersonalityBalanced Personality = iota
	PersonalityMilitarist
	PersonalityMerchant
	PersonalityIndustrialist
	PersonalityDiplomat
	PersonalityExpansionist
)

// Traits are per-nation numeric biases weighting AI decisions. 1.0 is
// neutral on every axis.
type Traits struct {
	Aggression float64
	Industry   float64
	Diplomacy  float64
	Expansion  float64
	Military   float64
}

// NationTemplate is the static identity and disposition of a playable
// nation.
type NationTemplate struct {
	Name           string
	Color          string
	SecondaryColor string
	Flag           string
	Personality    Personality
	Traits         Traits
}

// NationTemplates is the selectable roster. Game setup draws numAI+1
// entries from it.
var NationTemplates = []NationTemplate{
	{
		Name: "Valdorin Empire", Color: "#c0392b", SecondaryColor: "#922b21", Flag: "🦅",
		Personality: PersonalityMilitarist,
		Traits:      Traits{Aggression: 1.5, Industry: 1.0, Diplomacy: 0.7, Expansion: 1.2, Military: 1.4},
	},
	{
		Name: "Meridian League", Color: "#f1c40f", SecondaryColor: "#b7950b", Flag: "⚖️",
		Personality: PersonalityMerchant,
		Traits:      Traits{Aggression: 0.6, Industry: 1.1, Diplomacy: 1.4, Expansion: 0.9, Military: 0.8},
	},
	{
		Name: "Kovar Union", Color: "#7f8c8d", SecondaryColor: "#515a5a", Flag: "⚙️",
		Personality: PersonalityIndustrialist,
		Traits:      Traits{Aggression: 0.9, Industry: 1.5, Diplomacy: 0.9, Expansion: 1.0, Military: 1.0},
	},
	{
		Name: "Seravelle", Color: "#9b59b6", SecondaryColor: "#6c3483", Flag: "🕊️",
		Personality: PersonalityDiplomat,
		Traits:      Traits{Aggression: 0.5, Industry: 0.9, Diplomacy: 1.5, Expansion: 0.8, Military: 0.7},
	},
	{
		Name: "Thornwald", Color: "#27ae60", SecondaryColor: "#196f3d", Flag: "🌲",
		Personality: PersonalityExpansionist,
		Traits:      Traits{Aggression: 1.1, Industry: 0.9, Diplomacy: 0.8, Expansion: 1.5, Military: 1.1},
	},
	{
		Name: "Albrennia", Color: "#2980b9", SecondaryColor: "#1b4f72", Flag: "🛡️",
		Personality: PersonalityBalanced,
		Traits:      Traits{Aggression: 1.0, Industry: 1.0, Diplomacy: 1.0, Expansion: 1.0, Military: 1.0},
	},
	{
		Name: "Ostmark", Color: "#d35400", SecondaryColor: "#873600", Flag: "⚔️",
		Personality: PersonalityMilitarist,
		Traits:      Traits{Aggression: 1.3, Industry: 1.1, Diplomacy: 0.8, Expansion: 1.1, Military: 1.3},
	},
	{
		Name: "Lysandria", Color: "#16a085", SecondaryColor: "#0e6655", Flag: "🐚",
		Personality: PersonalityMerchant,
		Traits:      Traits{Aggression: 0.7, Industry: 1.0, Diplomacy: 1.3, Expansion: 1.0, Military: 0.9},
	},
	{
		Name: "Drakmoor", Color: "#8e44ad", SecondaryColor: "#5b2c6f", Flag: "🐉",
		Personality: PersonalityExpansionist,
		Traits:      Traits{Aggression: 1.2, Industry: 1.0, Diplomacy: 0.7, Expansion: 1.4, Military: 1.2},
	},
	{
		Name: "Norvik", Color: "#34495e", SecondaryColor: "#1c2833", Flag: "🔨",
		Personality: PersonalityIndustrialist,
		Traits:      Traits{Aggression: 0.8, Industry: 1.4, Diplomacy: 1.0, Expansion: 0.9, Military: 1.0},
	},
}
