package prompts

import (
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// PromptBuilder は、テーマ・スタイル分析と読者テンプレートを考慮して
// パネルごとの生成プロンプトを合成します。読者によるスタイル上書きは
// 呼び出しのたびではなく、構築時に一度だけ解決されます。
type PromptBuilder struct {
	theme    domain.ThemeAnalysis
	style    domain.VisualStyle
	template AudienceTemplate
}

// NewPromptBuilder は新しい PromptBuilder を生成します。
func NewPromptBuilder(theme domain.ThemeAnalysis, style domain.VisualStyle, audience string) *PromptBuilder {
	template := AudienceTemplateFor(audience)
	if template.StyleOverride != "" {
		style.Style = template.StyleOverride
	}
	if style.Style == "" {
		style.Style = domain.StyleGeneric
	}

	return &PromptBuilder{
		theme:    theme,
		style:    style,
		template: template,
	}
}

// EffectiveStyle は読者上書き適用後のスタイル名を返します。
func (pb *PromptBuilder) EffectiveStyle() domain.StyleName {
	return pb.style.Style
}

// BuildAll は全パネル骨格の GeneratedPrompt を合成して埋め、結果を返します。
// 同じ入力に対しては常にバイト単位で同一のプロンプトを生成します。
func (pb *PromptBuilder) BuildAll(prompts []domain.StoryboardPrompt, characters []domain.Character, scenes []domain.Scene) []domain.StoryboardPrompt {
	charMap := domain.BuildCharactersMap(characters)
	sceneMap := domain.BuildScenesMap(scenes)

	out := make([]domain.StoryboardPrompt, len(prompts))
	for i, p := range prompts {
		p.GeneratedPrompt = pb.buildOne(p, charMap, sceneMap)
		out[i] = p
	}
	return out
}

// buildOne は1パネル分のプロンプトを決定論的な連結パイプラインで組み立てます。
// 任意フィールドがすべて空でも、スタイルタグと締めタグにより空文字列には
// なりません。
func (pb *PromptBuilder) buildOne(p domain.StoryboardPrompt, charMap domain.CharactersMap, sceneMap domain.ScenesMap) string {
	parts := make([]string, 0, 12)

	// 1. スタイルタグの先頭付与
	parts = append(parts, StylePrefixFor(pb.style.Style))

	// 2. 構図のフレーミング指示
	parts = append(parts, CompositionPhraseFor(p.Composition))

	// 3. シーン描写
	parts = append(parts, p.SceneDescription)

	// 4. 登場キャラクターの外見（" and " 連結）
	if cue := joinCharacterCues(p.CharacterIDs, charMap); cue != "" {
		parts = append(parts, cue)
	}

	// 5. ロケーション・時間帯・環境
	if scene, ok := sceneMap[p.SceneID]; ok {
		// シーン描写がロケーションそのものの場合は二重に言及しない
		loc := strings.TrimSpace(scene.Location)
		if loc != "" && loc != strings.TrimSpace(p.SceneDescription) {
			parts = append(parts, "set in "+loc)
		}
		if scene.TimeOfDay != "" && scene.TimeOfDay != domain.TimeUnknown {
			parts = append(parts, "at "+string(scene.TimeOfDay))
		}
		parts = append(parts, scene.Environment)
	}

	// 6. アクション
	parts = append(parts, p.Action)

	// 7. カメラ・照明・雰囲気
	parts = append(parts, p.Camera, p.Lighting)
	if p.Mood != "" {
		parts = append(parts, p.Mood+" mood")
	}

	// 8. スタイル特性と読者トーン
	parts = append(parts, strings.Join(pb.style.Characteristics, ", "))
	parts = append(parts, pb.template.Tone)

	// 9. 締めタグ
	parts = append(parts, DefaultClosingTags)

	return joinClean(parts)
}

// joinCharacterCues はIDで引いたキャラクターの外見記述を " and " で連結します。
func joinCharacterCues(ids []string, charMap domain.CharactersMap) string {
	cues := make([]string, 0, len(ids))
	for _, id := range ids {
		char, ok := charMap[id]
		if !ok {
			continue
		}
		cue := char.VisualCue()
		if cue == "" {
			continue
		}
		cues = append(cues, char.Name+" ("+cue+")")
	}
	return strings.Join(cues, " and ")
}

// joinClean は空要素を除去してカンマ区切りで結合します。
func joinClean(parts []string) string {
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, ", ")
}

// GenerateAllPanelPrompts は再合成用の入口です。テーマ・スタイルの事前分析を
// 持たない呼び出し向けに、ニュートラルな分析結果で合成します。
// 分析済みの文脈がある場合は NewPromptBuilder を直接使ってください。
func GenerateAllPanelPrompts(prompts []domain.StoryboardPrompt, characters []domain.Character, scenes []domain.Scene) []domain.StoryboardPrompt {
	pb := NewPromptBuilder(
		domain.ThemeAnalysis{Type: domain.ThemeGeneral},
		domain.VisualStyle{Style: domain.StyleGeneric},
		"general",
	)
	return pb.BuildAll(prompts, characters, scenes)
}
