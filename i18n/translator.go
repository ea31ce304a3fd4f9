package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders filled from data; a template whose placeholders are
// not all available falls back to the bare form.
type dictTranslator struct{ lang string }

type entry struct {
	bare     string
	template string
}

var dict = map[string]map[string]entry{
	"en": {
		"invalid_type":  {"invalid type", "invalid type: {got}, expected {expected}"},
		"required":      {"required field missing", "missing field {key}"},
		"unknown_key":   {"unknown field", "unknown field {key}, expected one of {expected}"},
		"duplicate_key": {"duplicate field", "duplicate field {key}"},
		"too_short":     {"too short", "expected {expected} elements, got {got}"},
		"too_long":      {"too long", "expected exactly {expected} elements"},
		"overflow":      {"number out of f32 range", "number {value} out of f32 range"},
		"domain_range":  {"non-finite number", "non-finite number {value}"},
		"parse_error":   {"parse error", ""},
		"truncated":     {"truncated", ""},
	},
	"ja": {
		"invalid_type":  {"型が不正です", "型が不正です: {got} (期待: {expected})"},
		"required":      {"必須フィールドが不足しています", "必須フィールド {key} が不足しています"},
		"unknown_key":   {"未知のフィールドです", "未知のフィールド {key} です (期待: {expected})"},
		"duplicate_key": {"フィールドが重複しています", "フィールド {key} が重複しています"},
		"too_short":     {"短すぎます", "{expected} 要素が必要ですが {got} 要素しかありません"},
		"too_long":      {"長すぎます", "要素数はちょうど {expected} である必要があります"},
		"overflow":      {"f32 の範囲外の数値です", "数値 {value} は f32 の範囲外です"},
		"domain_range":  {"有限でない数値です", "数値 {value} は有限ではありません"},
		"parse_error":   {"解析エラー", ""},
		"truncated":     {"打ち切られました", ""},
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	e, ok := dict[t.lang][code]
	if !ok {
		return code
	}
	if e.template == "" || len(data) == 0 {
		return e.bare
	}
	msg := e.template
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	if strings.ContainsRune(msg, '{') {
		return e.bare
	}
	return msg
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
