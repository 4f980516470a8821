package domain

import "time"

// PanelType はパネルが物語の中で果たす役割の種別です。
type PanelType string

const (
	PanelEstablishing   PanelType = "establishing"
	PanelCharacterIntro PanelType = "character_intro"
	PanelAction         PanelType = "action"
	PanelDialogue       PanelType = "dialogue"
	PanelReaction       PanelType = "reaction"
	PanelTransition     PanelType = "transition"
	PanelResolution     PanelType = "resolution"
)

// Composition はパネルの構図（ショットサイズ）です。
type Composition string

const (
	CompositionWide         Composition = "wide"
	CompositionMedium       Composition = "medium"
	CompositionCloseUp      Composition = "close-up"
	CompositionExtremeClose Composition = "extreme-close-up"
	CompositionOverShoulder Composition = "over-the-shoulder"
	CompositionBirdsEye     Composition = "birds-eye"
)

// StoryboardPrompt は1パネル分の構造化された生成指示です。
// GeneratedPrompt は常に合成によって導出され、明示的なユーザー編集以外で
// 手書きされることはありません。同じ入力からの再生成は決定論的に上書きします。
type StoryboardPrompt struct {
	PanelNumber      int         `json:"panel_number"`
	PanelType        PanelType   `json:"panel_type"`
	Composition      Composition `json:"composition"`
	SceneDescription string      `json:"scene_description"`
	Action           string      `json:"action,omitempty"`
	CharacterIDs     []string    `json:"character_ids,omitempty"`
	SceneID          string      `json:"scene_id,omitempty"`
	Camera           string      `json:"camera,omitempty"`
	Lighting         string      `json:"lighting,omitempty"`
	Mood             string      `json:"mood,omitempty"`
	GeneratedPrompt  string      `json:"generated_prompt"`

	// 建築モードでのみ使用されるフィールド
	ViewType    ViewType    `json:"view_type,omitempty"`
	DetailLevel DetailLevel `json:"detail_level,omitempty"`
	Components  []string    `json:"components,omitempty"`
	Materials   []string    `json:"materials,omitempty"`
	Dimensions  []string    `json:"dimensions,omitempty"`
	Annotations []string    `json:"annotations,omitempty"`
	Scale       string      `json:"scale,omitempty"`
	UnitSystem  UnitSystem  `json:"unit_system,omitempty"`
	Standards   []string    `json:"standards,omitempty"`
}

// StoryboardPanel はプロンプトと画像生成の進行状態をまとめて保持します。
// プロンプトと生成済み画像は独立して変更可能です。プロンプト編集が画像を
// 消すことも、その逆もありません（明示的な操作のみ）。
type StoryboardPanel struct {
	Prompt            StoryboardPrompt `json:"prompt"`
	IsGenerating      bool             `json:"is_generating"`
	GeneratedImageURL string           `json:"generated_image_url,omitempty"`
	IsEdited          bool             `json:"is_edited"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
