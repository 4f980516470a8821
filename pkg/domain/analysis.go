package domain

// ThemeType は入力テキストから分類されるテーマのカテゴリです。
type ThemeType string

const (
	ThemeHistorical  ThemeType = "historical"
	ThemeEducational ThemeType = "educational"
	ThemeTechnical   ThemeType = "technical"
	ThemeFictional   ThemeType = "fictional"
	ThemeGeneral     ThemeType = "general"
)

// ThemeAnalysis はテーマ分類の結果です。永続化はされず、必要になるたびに
// プロジェクトが保持する元の入力テキストから再導出されます。
type ThemeAnalysis struct {
	Type        ThemeType `json:"type"`
	Concepts    []string  `json:"concepts,omitempty"`
	TimePeriod  string    `json:"time_period,omitempty"`
	Location    string    `json:"location,omitempty"`
	KeyEvents   []string  `json:"key_events,omitempty"`
	MainSubject string    `json:"main_subject,omitempty"`
}

// StyleName は検出されるビジュアルスタイルのカテゴリです。
type StyleName string

const (
	StyleToons      StyleName = "toons"
	StyleRealistic  StyleName = "realistic"
	StyleAnime      StyleName = "anime"
	StyleSketch     StyleName = "sketch"
	StyleStoryboard StyleName = "storyboard"
	StyleGeneric    StyleName = "generic"
)

// Complexity はスタイルの描き込み密度の段階です。
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityDetailed Complexity = "detailed"
)

// VisualStyle はビジュアルスタイル分類の結果です。ThemeAnalysis と同様に
// エフェメラルで、プロジェクト状態としては保存されません。
type VisualStyle struct {
	Style           StyleName  `json:"style"`
	Characteristics []string   `json:"characteristics,omitempty"`
	Complexity      Complexity `json:"complexity"`
}
