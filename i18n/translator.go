package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			msg = "型が不正です"
		case "required":
			msg = "必須キーが不足しています"
		case "unknown_key":
			msg = "未知のキーです"
		case "duplicate_key":
			msg = "キーが重複しています"
		case "invalid_enum":
			msg = "未知の種別です"
		case "unknown_ref":
			msg = "未定義の名前を参照しています"
		case "too_small":
			msg = "小さすぎます"
		case "parse_error":
			msg = "解析エラー"
		case "truncated":
			msg = "ネストが深すぎるか要素が多すぎます"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			msg = "invalid type"
		case "required":
			msg = "required key missing"
		case "unknown_key":
			msg = "unknown key"
		case "duplicate_key":
			msg = "duplicate key"
		case "invalid_enum":
			msg = "unknown kind"
		case "unknown_ref":
			msg = "reference to undefined name"
		case "too_small":
			msg = "too small"
		case "parse_error":
			msg = "parse error"
		case "truncated":
			msg = "description too deep or too large"
		}
	}
	if msg == "" {
		return code
	}
	return msg + detail(data)
}

// detail renders the well-known data keys as a parenthesized suffix, e.g.
// ` (key=fields)`.
func detail(data map[string]string) string {
	var parts []string
	for _, k := range []string{"key", "name", "value", "expected", "min", "max"} {
		if v, ok := data[k]; ok {
			parts = append(parts, k+"="+v)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
