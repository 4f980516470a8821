package parser

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shouni/go-storyboard-kit/pkg/analyze"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/extract"
	"github.com/shouni/go-storyboard-kit/pkg/prompts"
	"github.com/shouni/go-storyboard-kit/pkg/sequence"
)

const maxTitleRunes = 60

// ParseUserInput は自然言語の入力文を解析し、完全な絵コンテプロジェクトを
// 組み立てます。失敗しても panic は境界で回収され、常に ParseResult が
// 返ります。同じ入力に対する結果は決定論的です（所要時間とタイムスタンプ
// を除く）。
func ParseUserInput(input string) *ParseResult {
	return ParseUserInputForAudience(input, "")
}

// ParseUserInputForAudience は想定読者を明示的に上書きして解析します。
// audience が空の場合は入力文からの自動検出にフォールバックします。
func ParseUserInputForAudience(input, audience string) (result *ParseResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("解析中に回復不能なエラーが発生しました", "panic", r)
			result = failure(start, fmt.Sprintf("internal parse error: %v", r))
		}
	}()

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return failure(start, "input is empty")
	}

	slog.Info("絵コンテ解析を開始します", "input_length", len(trimmed))

	// --- 1. テーマと画風の分析 ---
	theme := analyze.AnalyzeTheme(trimmed)
	style := analyze.AnalyzeVisualStyle(trimmed)

	// --- 2. キャラクターとシーンの抽出 ---
	characters := extract.ExtractCharacters(trimmed)
	scenes := extract.ExtractScenes(trimmed)

	// --- 3. 属性の検出 ---
	count := extract.DetectPanelCount(trimmed)
	if audience == "" {
		audience = extract.DetectAudience(trimmed)
	}

	// --- 4. 物語アークに沿ったパネル骨格の生成 ---
	panelPrompts := sequence.GeneratePanelSequence(trimmed, characters, scenes, count)

	// --- 5. プロンプト合成 ---
	builder := prompts.NewPromptBuilder(theme, style, audience)
	panelPrompts = builder.BuildAll(panelPrompts, characters, scenes)

	// --- 6. プロジェクトの組み立て ---
	project := &domain.StoryboardProject{
		ID:          projectID("sb", trimmed),
		Title:       deriveTitle(theme.MainSubject, trimmed),
		Description: trimmed,
		UserInput:   trimmed,
		Style:       builder.EffectiveStyle(),
		ProjectType: domain.ProjectStoryboard,
		Characters:  characters,
		Scenes:      scenes,
		Panels:      wrapPanels(panelPrompts),
		CreatedAt:   time.Now(),
	}

	slog.Info("絵コンテ解析が完了しました",
		"project_id", project.ID,
		"characters", len(characters),
		"scenes", len(scenes),
		"panels", len(project.Panels),
	)

	return &ParseResult{
		Success:        true,
		Project:        project,
		ProcessingTime: time.Since(start),
	}
}

// ParseArchitecturalInput は建築パイプライン向けの入力を解析します。
// kind が未知の場合は失敗として報告します。
func ParseArchitecturalInput(input string, kind domain.ArchitecturalKind) (result *ParseResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("建築解析中に回復不能なエラーが発生しました", "panic", r)
			result = failure(start, fmt.Sprintf("internal parse error: %v", r))
		}
	}()

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return failure(start, "input is empty")
	}

	switch kind {
	case domain.KindDetalles, domain.KindPlanos, domain.KindPrototipos:
	default:
		return failure(start, fmt.Sprintf("unknown architectural kind %q", kind))
	}

	slog.Info("建築図面解析を開始します", "kind", kind, "input_length", len(trimmed))

	// --- 1. 図面属性の抽出 ---
	count := extract.DetectPanelCount(trimmed)
	meta := domain.ArchitecturalMetadata{
		Kind:           kind,
		UnitSystem:     extract.DetectUnitSystem(trimmed),
		Scale:          extract.DetectScale(trimmed),
		Standards:      extract.DetectStandards(trimmed),
		DetailSequence: sequence.DetailSequenceFor(kind, count),
	}
	meta.PrimaryView = sequence.ViewTypeFor(meta.DetailSequence[0])
	if len(meta.DetailSequence) > 1 {
		meta.SecondaryView = sequence.ViewTypeFor(meta.DetailSequence[1])
	}

	components := extract.ExtractComponents(trimmed)
	materials := extract.ExtractMaterials(trimmed)
	dimensions := extract.ExtractDimensions(trimmed)
	annotations := extract.ExtractReinforcement(trimmed)

	// --- 2. ディテール進行に沿ったパネル骨格の生成 ---
	panelPrompts := sequence.GenerateArchitecturalSequence(trimmed, meta, count)
	for i := range panelPrompts {
		panelPrompts[i].Components = components
		panelPrompts[i].Materials = materials
		panelPrompts[i].Dimensions = dimensions
		panelPrompts[i].Annotations = annotations
	}

	// --- 3. CAD風プロンプトの合成 ---
	panelPrompts = prompts.GenerateArchitecturalPanelPrompts(panelPrompts, meta, kind)

	// --- 4. プロジェクトの組み立て ---
	project := &domain.StoryboardProject{
		ID:            projectID("arch", trimmed),
		Title:         deriveTitle("", trimmed),
		Description:   trimmed,
		UserInput:     trimmed,
		Style:         domain.StyleSketch,
		ProjectType:   domain.ProjectArchitectural,
		Panels:        wrapPanels(panelPrompts),
		Architectural: &meta,
		CreatedAt:     time.Now(),
	}

	slog.Info("建築図面解析が完了しました",
		"project_id", project.ID,
		"kind", kind,
		"panels", len(project.Panels),
	)

	return &ParseResult{
		Success:        true,
		Project:        project,
		ProcessingTime: time.Since(start),
	}
}

// projectID は入力文のハッシュから安定したプロジェクトIDを導出します。
func projectID(prefix, input string) string {
	sum := sha256.Sum256([]byte(input))
	return prefix + "-" + hex.EncodeToString(sum[:4])
}

// deriveTitle は主題（無ければ入力文そのもの）からタイトルを切り出します。
func deriveTitle(subject, input string) string {
	title := strings.TrimSpace(subject)
	if title == "" {
		title = strings.TrimSpace(input)
	}
	runes := []rune(title)
	if len(runes) > maxTitleRunes {
		title = string(runes[:maxTitleRunes])
	}
	return title
}

func wrapPanels(panelPrompts []domain.StoryboardPrompt) []domain.StoryboardPanel {
	now := time.Now()
	panels := make([]domain.StoryboardPanel, len(panelPrompts))
	for i, p := range panelPrompts {
		panels[i] = domain.StoryboardPanel{
			Prompt:    p,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return panels
}
