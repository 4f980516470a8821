package publisher

import (
	"fmt"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// BuildStoryboardMarkdown は、プロジェクトのタイトル、画像パス、パネル情報を
// 統合して go-text-format が解釈可能な Markdown 文字列を生成します。
func BuildStoryboardMarkdown(project *domain.StoryboardProject, imagePaths []string) string {
	var sb strings.Builder

	// 1. タイトルの出力
	sb.WriteString(fmt.Sprintf("# %s\n\n", project.Title))

	// 2. 建築モードでは図面全体の設定を前置きする
	if meta := project.Architectural; meta != nil {
		sb.WriteString(fmt.Sprintf("- kind: %s\n", meta.Kind))
		sb.WriteString(fmt.Sprintf("- scale: %s\n", meta.Scale))
		sb.WriteString(fmt.Sprintf("- units: %s\n", meta.UnitSystem))
		if len(meta.Standards) > 0 {
			sb.WriteString(fmt.Sprintf("- standards: %s\n", strings.Join(meta.Standards, ", ")))
		}
		sb.WriteString("\n")
	}

	for i, panel := range project.Panels {
		prompt := panel.Prompt

		// 画像パスの決定（画像が足りない場合はプレースホルダー）
		imagePath := placeholder
		if i < len(imagePaths) {
			imagePath = imagePaths[i]
		}

		// 3. パネルヘッダーの出力
		sb.WriteString(fmt.Sprintf("## Panel: %s\n", imagePath))
		sb.WriteString("- layout: standard\n")
		sb.WriteString(fmt.Sprintf("- type: %s\n", prompt.PanelType))

		if prompt.DetailLevel != "" {
			// 建築パネルはビューとディテールレベルを併記する
			sb.WriteString(fmt.Sprintf("- view: %s\n", prompt.ViewType))
			sb.WriteString(fmt.Sprintf("- detail: %s\n", prompt.DetailLevel))
		} else {
			sb.WriteString(fmt.Sprintf("- composition: %s\n", prompt.Composition))
			if names := characterNames(project, prompt.CharacterIDs); names != "" {
				sb.WriteString(fmt.Sprintf("- characters: %s\n", names))
			}
		}

		if prompt.Action != "" {
			sb.WriteString(fmt.Sprintf("- text: %s\n", strings.TrimSpace(prompt.Action)))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// characterNames はIDリストを表示用のキャラクター名に変換します。
func characterNames(project *domain.StoryboardProject, ids []string) string {
	var names []string
	for _, id := range ids {
		if c, ok := project.FindCharacter(id); ok {
			names = append(names, c.Name)
		}
	}
	return strings.Join(names, ", ")
}
