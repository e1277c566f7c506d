// config.go - Haupt-Konfigurationsfunktionen fuer fzh
//
// Dieses Modul enthaelt:
// - HistoryDir: Gibt das Index-Verzeichnis zurueck (FUZZY_HISTORY_DIR)
// - LogLevel: Gibt Log-Level zurueck (FUZZY_HISTORY_DEBUG)
// - Var: Liest eine Environment-Variable ohne Quotes
//
// Weitere Konfigurationen sind ausgelagert:
// - config_features.go: Darstellungs-Variablen
// - config_utils.go: Utility-Funktionen und AsMap/Values
// - config_file.go: optionale config.yaml im Index-Verzeichnis
package envconfig

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HistoryDir gibt das Index-Verzeichnis zurueck
// Konfigurierbar via FUZZY_HISTORY_DIR
// Default: $HOME/.fuzzy_history
func HistoryDir() string {
	if s := Var("FUZZY_HISTORY_DIR"); s != "" {
		return s
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Ohne HOME bleibt nur das Arbeitsverzeichnis
		slog.Warn("could not determine home directory", "error", err)
		return ".fuzzy_history"
	}

	return filepath.Join(home, ".fuzzy_history")
}

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via FUZZY_HISTORY_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("FUZZY_HISTORY_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
