// Package config holds tool-wide constants and the slate.yaml settings
// file loader.
package config

import "strings"

const SourceFileExt = ".sl"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".sl", ".slate"}

// ConfigFileName is the per-project settings file looked up in the
// working directory.
const ConfigFileName = "slate.yaml"

// IsSourceFile reports whether path has a recognized source extension.
func IsSourceFile(path string) bool {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// TrimSourceExt strips a recognized source extension for display.
func TrimSourceExt(path string) string {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext)
		}
	}
	return path
}
