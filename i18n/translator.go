package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "want" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "type_mismatch":
			if want, got := data["want"], data["got"]; want != "" && got != "" {
				return "期待された列型は " + want + "、実際は " + got
			}
			return "列型が一致しません"
		case "duplicate_column":
			return "列が重複して宣言されています"
		case "unknown_type":
			return "未知の型タグです"
		case "no_columns":
			return "スキーマに列がありません"
		case "unknown_column":
			return "スキーマにない列です"
		case "missing_column":
			return "データセットに列がありません"
		}
	default: // "en"
		switch code {
		case "type_mismatch":
			if want, got := data["want"], data["got"]; want != "" && got != "" {
				return "expected " + want + " column, got " + got
			}
			return "column type mismatch"
		case "duplicate_column":
			return "column declared more than once"
		case "unknown_type":
			return "unrecognized type tag"
		case "no_columns":
			return "schema declares no columns"
		case "unknown_column":
			return "column not declared in schema"
		case "missing_column":
			return "declared column missing from dataset"
		}
	}
	return code
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
