package extract

import (
	"strconv"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

const (
	// DefaultPanelCount はパネル数の指定がない場合の既定値です。
	DefaultPanelCount = 4
	// MinPanelCount / MaxPanelCount はパネル数のクランプ範囲です。
	MinPanelCount = 1
	MaxPanelCount = 12
)

// DetectPanelCount は "N panels" / "panels: N" 形式の指定を検出し、
// [1, 12] にクランプして返します。指定がなければ 4 を返します。
func DetectPanelCount(input string) int {
	lowered := strings.ToLower(input)

	var raw string
	if m := PanelCountLabelRegex.FindStringSubmatch(lowered); m != nil {
		raw = m[1]
	} else if m := PanelCountRegex.FindStringSubmatch(lowered); m != nil {
		raw = m[1]
	}
	if raw == "" {
		return DefaultPanelCount
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultPanelCount
	}
	if n < MinPanelCount {
		return MinPanelCount
	}
	if n > MaxPanelCount {
		return MaxPanelCount
	}
	return n
}

// keywordEntry はキーワード集合と対応する結果値の対です。先勝ちです。
type keywordEntry struct {
	keywords []string
	value    string
}

func firstKeywordMatch(lowered string, entries []keywordEntry, fallback string) string {
	for _, e := range entries {
		for _, kw := range e.keywords {
			if strings.Contains(lowered, kw) {
				return e.value
			}
		}
	}
	return fallback
}

var moodEntries = []keywordEntry{
	{[]string{"happy", "joy", "cheerful", "feliz", "alegre"}, "cheerful"},
	{[]string{"sad", "somber", "melancholy", "triste"}, "somber"},
	{[]string{"tense", "danger", "threat", "peligro", "tenso"}, "tense"},
	{[]string{"mysterious", "mystery", "misterio"}, "mysterious"},
	{[]string{"calm", "peaceful", "quiet", "tranquilo", "paz"}, "peaceful"},
	{[]string{"epic", "dramatic", "épico", "dramático"}, "dramatic"},
}

// DetectMood は入力テキストから雰囲気を1つ検出します。既定値は "neutral" です。
func DetectMood(input string) string {
	return firstKeywordMatch(strings.ToLower(input), moodEntries, "neutral")
}

var timeEntries = []struct {
	keywords []string
	value    domain.TimeOfDay
}{
	{[]string{"morning", "sunrise", "dawn", "mañana", "amanecer"}, domain.TimeMorning},
	// "atardecer" は "tarde" を含むため、evening を afternoon より先に評価する
	{[]string{"evening", "sunset", "dusk", "atardecer"}, domain.TimeEvening},
	{[]string{"afternoon", "midday", "noon", "mediodía", "tarde"}, domain.TimeAfternoon},
	{[]string{"night", "midnight", "noche", "medianoche"}, domain.TimeNight},
}

// DetectTimeOfDay は入力テキストから時間帯を検出します。既定値は unknown です。
func DetectTimeOfDay(input string) domain.TimeOfDay {
	lowered := strings.ToLower(input)
	for _, e := range timeEntries {
		for _, kw := range e.keywords {
			if strings.Contains(lowered, kw) {
				return e.value
			}
		}
	}
	return domain.TimeUnknown
}

var genreEntries = []keywordEntry{
	{[]string{"comedy", "funny", "comedia"}, "comedy"},
	{[]string{"horror", "terror", "scary"}, "horror"},
	{[]string{"romance", "love story", "romántica"}, "romance"},
	{[]string{"action", "chase", "battle", "acción"}, "action"},
	{[]string{"documentary", "documental"}, "documentary"},
	{[]string{"drama"}, "drama"},
}

// DetectGenre は入力テキストからジャンルを1つ検出します。既定値は "general" です。
func DetectGenre(input string) string {
	return firstKeywordMatch(strings.ToLower(input), genreEntries, "general")
}

var audienceEntries = []keywordEntry{
	{[]string{"children", "kids", "para niños", "infantil"}, "children"},
	{[]string{"architect", "arquitecto"}, "architects"},
	{[]string{"filmmaker", "director", "cineasta"}, "filmmakers"},
	{[]string{"student", "estudiante", "classroom"}, "students"},
}

// DetectAudience は入力テキストから想定読者を1つ検出します。既定値は "general" です。
func DetectAudience(input string) string {
	return firstKeywordMatch(strings.ToLower(input), audienceEntries, "general")
}
