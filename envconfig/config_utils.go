// config_utils.go - Utility-Funktionen und Export fuer Konfiguration
//
// Dieses Modul enthaelt:
// - BoolWithDefault/Bool: Boolean-Getter mit Default-Wert
// - String: String-Getter
// - Uint: Integer-Getter mit Default-Wert
// - EnvVar: Struktur fuer Environment-Variablen-Info
// - AsMap: Gibt alle Konfigurationen als Map zurueck
// - Values: Gibt alle Konfigurationswerte als String-Map zurueck
package envconfig

import (
	"fmt"
	"log/slog"
	"strconv"
)

// =============================================================================
// Boolean-Getter
// =============================================================================

// BoolWithDefault gibt eine Funktion zurueck, die einen Bool mit Default-Wert liest
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool gibt eine Funktion zurueck, die einen Bool liest (Default: false)
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// =============================================================================
// String-Getter
// =============================================================================

// String gibt eine Funktion zurueck, die einen String liest
func String(s string) func() string {
	return func() string {
		return Var(s)
	}
}

// =============================================================================
// Integer-Getter
// =============================================================================

// Uint gibt eine Funktion zurueck, die einen uint mit Default-Wert liest
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// =============================================================================
// Export-Strukturen und -Funktionen
// =============================================================================

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
// Enthaelt Namen, aktuelle Werte und Beschreibungen
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"FUZZY_HISTORY_DIR":          {"FUZZY_HISTORY_DIR", HistoryDir(), "Directory holding the history index and config.yaml (default ~/.fuzzy_history)"},
		"FUZZY_HISTORY_DEBUG":        {"FUZZY_HISTORY_DEBUG", LogLevel(), "Write debug information to fzh.log (e.g. FUZZY_HISTORY_DEBUG=1)"},
		"FUZZY_HISTORY_THEME":        {"FUZZY_HISTORY_THEME", Theme(), "Selector theme: colorful or simple (default colorful)"},
		"FUZZY_HISTORY_PROMPT":       {"FUZZY_HISTORY_PROMPT", Prompt(), "Label shown before the query"},
		"FUZZY_HISTORY_COLOR":        {"FUZZY_HISTORY_COLOR", Color(), "Color output: auto, always or never (default auto)"},
		"FUZZY_HISTORY_MAX_ROWS":     {"FUZZY_HISTORY_MAX_ROWS", MaxRows(), "Maximum number of visible candidates (0 = terminal height)"},
		"FUZZY_HISTORY_NO_HIGHLIGHT": {"FUZZY_HISTORY_NO_HIGHLIGHT", NoHighlight(), "Do not highlight matched query tokens"},
	}
}

// Values gibt alle Konfigurationswerte als String-Map zurueck
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
