package prompts

import "github.com/shouni/go-storyboard-kit/pkg/domain"

// DefaultClosingTags は全ストーリーボードパネルに付与される共通の締めタグです。
const DefaultClosingTags = "storyboard panel, concept art style, unfinished sketch look"

// stylePrefixes はビジュアルスタイルごとの先頭タグです。プロセス起動時に
// 一度だけ定義される不変のルックアップで、実行時に変更されることはありません。
var stylePrefixes = map[domain.StyleName]string{
	domain.StyleToons:      "colorful cartoon illustration, bold outlines, flat cheerful colors",
	domain.StyleRealistic:  "photorealistic rendering, natural lighting, accurate anatomy",
	domain.StyleAnime:      "anime illustration, cel shading, clean line art, expressive eyes",
	domain.StyleSketch:     "loose pencil sketch, visible construction lines, monochrome hatching",
	domain.StyleStoryboard: "professional storyboard frame, grayscale blocking, camera-ready framing",
	domain.StyleGeneric:    "clear illustrated scene, balanced composition",
}

// compositionPhrases は構図ごとのフレーミング指示です。
var compositionPhrases = map[domain.Composition]string{
	domain.CompositionWide:         "wide establishing shot showing the full scene",
	domain.CompositionMedium:       "medium shot framing the subject from the waist up",
	domain.CompositionCloseUp:      "close-up shot focused on expression and detail",
	domain.CompositionExtremeClose: "extreme close-up isolating a single detail",
	domain.CompositionOverShoulder: "over-the-shoulder shot suggesting conversation",
	domain.CompositionBirdsEye:     "bird's-eye view looking straight down on the scene",
}

// AudienceTemplate は想定読者ごとのプリセットです。StyleOverride が設定されて
// いる場合、検出されたビジュアルスタイルに関わらずそのスタイルを強制します。
type AudienceTemplate struct {
	Audience      string
	StyleOverride domain.StyleName // 空文字列なら上書きしない
	Tone          string
}

// AudienceTemplates は名前付き読者プリセットの不変テーブルです。
var AudienceTemplates = map[string]AudienceTemplate{
	"general": {
		Audience: "general",
	},
	"children": {
		Audience:      "children",
		StyleOverride: domain.StyleToons,
		Tone:          "friendly, bright, nothing frightening",
	},
	"architects": {
		// 建築家向けは検出結果を問わずクリーンな線画に寄せる
		Audience:      "architects",
		StyleOverride: domain.StyleSketch,
		Tone:          "clean precise linework, restrained color, technical clarity",
	},
	"filmmakers": {
		Audience:      "filmmakers",
		StyleOverride: domain.StyleStoryboard,
		Tone:          "cinematic framing, lens-aware composition",
	},
	"students": {
		Audience: "students",
		Tone:     "clear, didactic, step-by-step readability",
	},
}

// AudienceTemplateFor は読者名からテンプレートを引きます。未知の読者は
// general にフォールバックします。
func AudienceTemplateFor(audience string) AudienceTemplate {
	if t, ok := AudienceTemplates[audience]; ok {
		return t
	}
	return AudienceTemplates["general"]
}

// StylePrefixFor はスタイルの先頭タグを返します。未知のスタイルは generic
// として扱います。
func StylePrefixFor(style domain.StyleName) string {
	if p, ok := stylePrefixes[style]; ok {
		return p
	}
	return stylePrefixes[domain.StyleGeneric]
}

// CompositionPhraseFor は構図のフレーミング指示を返します。
func CompositionPhraseFor(c domain.Composition) string {
	if p, ok := compositionPhrases[c]; ok {
		return p
	}
	return compositionPhrases[domain.CompositionMedium]
}
