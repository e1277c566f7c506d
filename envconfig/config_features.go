// config_features.go - Darstellungs-Konfiguration
//
// Dieses Modul enthaelt die Variablen, die das Aussehen des Selectors
// steuern. Leere Werte bedeuten: config.yaml oder eingebauter Default.
package envconfig

var (
	// Theme waehlt die Darstellung (colorful, simple)
	Theme = String("FUZZY_HISTORY_THEME")

	// Prompt steht vor dem Suchtext
	Prompt = String("FUZZY_HISTORY_PROMPT")

	// Color erzwingt die Farberkennung (auto, always, never)
	Color = String("FUZZY_HISTORY_COLOR")

	// MaxRows begrenzt die sichtbaren Kandidaten, 0 = Terminalhoehe
	MaxRows = Uint("FUZZY_HISTORY_MAX_ROWS", 0)

	// NoHighlight schaltet die Hervorhebung der Treffer ab
	NoHighlight = Bool("FUZZY_HISTORY_NO_HIGHLIGHT")
)
