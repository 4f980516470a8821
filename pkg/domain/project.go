package domain

import "time"

// ProjectType はプロジェクトの種別です。
type ProjectType string

const (
	ProjectStoryboard    ProjectType = "storyboard"
	ProjectArchitectural ProjectType = "architectural"
	ProjectMiniWorld     ProjectType = "mini-world"
)

// StoryboardProject はパース結果全体を束ねる集約ルートです。
// パーサーによって一括で構築され、部分的に構築された状態で返されることは
// ありません。UserInput は再生成・再分析のために原文のまま保持します。
type StoryboardProject struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	UserInput   string      `json:"user_input"`
	Style       StyleName   `json:"style"`
	ProjectType ProjectType `json:"project_type"`

	Characters []Character       `json:"characters"`
	Scenes     []Scene           `json:"scenes"`
	Panels     []StoryboardPanel `json:"panels"`

	Architectural *ArchitecturalMetadata `json:"architectural_metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// FindCharacter はIDからキャラクターを検索します。
func (p *StoryboardProject) FindCharacter(id string) (Character, bool) {
	for _, c := range p.Characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

// FindScene はIDからシーンを検索します。
func (p *StoryboardProject) FindScene(id string) (Scene, bool) {
	for _, s := range p.Scenes {
		if s.ID == id {
			return s, true
		}
	}
	return Scene{}, false
}

// PanelNumbersContiguous はパネル番号が1から連番になっているかを判定します。
func (p *StoryboardProject) PanelNumbersContiguous() bool {
	for i, panel := range p.Panels {
		if panel.Prompt.PanelNumber != i+1 {
			return false
		}
	}
	return true
}

// Prompts は全パネルのプロンプト部分だけを取り出します。再合成用の入口です。
func (p *StoryboardProject) Prompts() []StoryboardPrompt {
	prompts := make([]StoryboardPrompt, len(p.Panels))
	for i, panel := range p.Panels {
		prompts[i] = panel.Prompt
	}
	return prompts
}

// ReplacePrompts は再合成されたプロンプトを各パネルに書き戻します。
// パネルの画像や編集フラグには触れません。
func (p *StoryboardProject) ReplacePrompts(prompts []StoryboardPrompt) {
	for i := range p.Panels {
		if i < len(prompts) {
			p.Panels[i].Prompt = prompts[i]
		}
	}
}
