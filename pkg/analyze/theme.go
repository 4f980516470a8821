package analyze

import (
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// themeCategory はテーマ1分類ぶんのトリガー語彙です。
// 実際の入力データに英語とスペイン語が混在するため、両方の語彙を持ちます。
type themeCategory struct {
	theme    domain.ThemeType
	keywords []string
}

// themeCascade は先頭から順に評価され、最初に一致した分類が勝ちます。
var themeCascade = []themeCategory{
	{domain.ThemeHistorical, []string{
		"history", "historical", "historia", "histórico",
		"ancient", "antiguo", "medieval", "empire", "imperio",
		"war of", "guerra", "revolution", "revolución", "century", "siglo",
	}},
	{domain.ThemeEducational, []string{
		"learn", "teach", "explain", "lesson", "tutorial", "how to",
		"aprender", "enseñar", "explicar", "lección", "educativo",
	}},
	{domain.ThemeTechnical, []string{
		"technical", "técnico", "tecnico", "structural", "estructural",
		"engineering", "ingeniería", "construction", "construcción",
		"detail", "detalle", "reinforced", "armado", "blueprint", "plano",
	}},
	{domain.ThemeFictional, []string{
		"dragon", "dragón", "magic", "magia", "wizard", "fantasy", "fantasía",
		"alien", "spaceship", "robot", "space station", "kingdom", "reino",
	}},
}

// AnalyzeTheme は入力テキストをテーマ分類します。どの分類にも一致しない
// 場合は general にフォールバックします。同じ入力に対して常に同じ結果を
// 返します（乱数・時刻への依存なし）。
func AnalyzeTheme(input string) domain.ThemeAnalysis {
	lowered := strings.ToLower(input)

	for _, cat := range themeCascade {
		concepts := matchedKeywords(lowered, cat.keywords)
		if len(concepts) == 0 {
			continue
		}

		analysis := domain.ThemeAnalysis{
			Type:     cat.theme,
			Concepts: concepts,
		}
		if cat.theme == domain.ThemeHistorical {
			analysis.TimePeriod = extractTimePeriod(input)
			analysis.Location = extractHistoricalLocation(lowered)
			analysis.KeyEvents = extractKeyEvents(lowered)
		}
		analysis.MainSubject = extractMainSubject(input)
		return analysis
	}

	return domain.ThemeAnalysis{
		Type:        domain.ThemeGeneral,
		MainSubject: extractMainSubject(input),
	}
}

func matchedKeywords(lowered string, keywords []string) []string {
	var found []string
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// extractTimePeriod は年号または世紀表記を1つ拾います。
func extractTimePeriod(input string) string {
	if m := CenturyRegex.FindString(input); m != "" {
		return m
	}
	if m := YearRegex.FindString(input); m != "" {
		return m
	}
	return ""
}

var historicalLocations = []string{
	"rome", "roma", "egypt", "egipto", "greece", "grecia",
	"japan", "japón", "china", "europe", "europa", "america", "américa",
	"spain", "españa", "mexico", "méxico",
}

func extractHistoricalLocation(lowered string) string {
	for _, loc := range historicalLocations {
		if strings.Contains(lowered, loc) {
			return loc
		}
	}
	return ""
}

var keyEventKeywords = []string{
	"war", "guerra", "battle", "batalla", "revolution", "revolución",
	"independence", "independencia", "conquest", "conquista", "discovery", "descubrimiento",
}

func extractKeyEvents(lowered string) []string {
	return matchedKeywords(lowered, keyEventKeywords)
}

// extractMainSubject は最初の文をそのまま主題として採用します。
// パーサーではなくヒューリスティックなので、これで十分です。
func extractMainSubject(input string) string {
	parts := sentenceSplitRegex.Split(input, 2)
	subject := strings.TrimSpace(parts[0])
	if subject == "" {
		return strings.TrimSpace(input)
	}
	return subject
}
