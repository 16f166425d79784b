// Package langdetect identifies the programming language of a source file
// and reports whether that language uses slash line comments. It wraps
// go-enry, combining filename and content signals.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language constants for the languages the formatter targets.
const (
	LangSwift      = "swift"
	LangGo         = "go"
	LangC          = "c"
	LangCPP        = "c++"
	LangCSharp     = "c#"
	LangJava       = "java"
	LangKotlin     = "kotlin"
	LangRust       = "rust"
	LangScala      = "scala"
	LangObjectiveC = "objective-c"
	LangJavaScript = "javascript"
	LangTypeScript = "typescript"
	LangDart       = "dart"
	LangUnknown    = ""
)

// slashCommentLanguages lists languages whose line comments start with
// slashes, making them eligible for comment formatting.
var slashCommentLanguages = map[string]bool{
	LangSwift:      true,
	LangGo:         true,
	LangC:          true,
	LangCPP:        true,
	LangCSharp:     true,
	LangJava:       true,
	LangKotlin:     true,
	LangRust:       true,
	LangScala:      true,
	LangObjectiveC: true,
	LangJavaScript: true,
	LangTypeScript: true,
	LangDart:       true,
}

// DefaultExtensions lists the file extensions discovery walks by default.
var DefaultExtensions = []string{".swift"}

// Detect returns the normalized language name for a file, combining the
// filename with content-based detection. Returns LangUnknown when enry
// cannot identify the language.
func Detect(path string, content []byte) string {
	lang := enry.GetLanguage(filepath.Base(path), content)
	return normalize(lang)
}

// SupportsSlashComments reports whether a detected language uses `//`
// line comments.
func SupportsSlashComments(lang string) bool {
	return slashCommentLanguages[lang]
}

// normalize lowercases enry language names into the constants above.
func normalize(lang string) string {
	switch strings.ToLower(lang) {
	case "":
		return LangUnknown
	case "objective-c", "objective-c++":
		return LangObjectiveC
	default:
		return strings.ToLower(lang)
	}
}
