package validate

import (
	"fmt"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// 減点・加点の固定テーブルです。スコアは 100 から減点し、整合ボーナスを
// 加えたうえで [0, 100] にクランプされます。
const (
	penaltyMissingTitle       = 20
	penaltyMissingDescription = 15
	penaltyNoCharacters       = 10
	penaltyNoScenes           = 20
	penaltyNoPanels           = 30
	penaltyBrokenPanel        = 5

	bonusPerConsistentCharacter = 10
	maxCharacterBonus           = 20
	maxThemeBonus               = 20
	maxStyleBonus               = 20

	recommendedPanelCount = 4
)

// ValidateStoryboardProject はプロジェクト全体を検証し、0〜100 のスコアと
// 分類済みの問題・改善提案を返します。検証器自体は決して失敗しません。
// error タイプの問題が1件もなければ IsValid は true になります。
func ValidateStoryboardProject(project *domain.StoryboardProject) domain.ValidationResult {
	result := domain.ValidationResult{Score: 100}

	if project == nil {
		result.Score = 0
		result.Issues = append(result.Issues, domain.ValidationIssue{
			Type: domain.IssueError, Field: "project", Message: "project is nil",
		})
		return result
	}

	penalty := 0

	if strings.TrimSpace(project.Title) == "" {
		penalty += penaltyMissingTitle
		result.Issues = append(result.Issues, domain.ValidationIssue{
			Type: domain.IssueWarning, Field: "title", Message: "project has no title",
		})
	}
	if strings.TrimSpace(project.Description) == "" {
		penalty += penaltyMissingDescription
		result.Issues = append(result.Issues, domain.ValidationIssue{
			Type: domain.IssueWarning, Field: "description", Message: "project has no description",
		})
	}
	// 建築プロジェクトは意図的にキャラクターとシーンを持たない
	if project.ProjectType != domain.ProjectArchitectural {
		if len(project.Characters) == 0 {
			penalty += penaltyNoCharacters
			result.Issues = append(result.Issues, domain.ValidationIssue{
				Type: domain.IssueWarning, Field: "characters", Message: "project has no characters",
			})
		}
		if len(project.Scenes) == 0 {
			penalty += penaltyNoScenes
			result.Issues = append(result.Issues, domain.ValidationIssue{
				Type: domain.IssueError, Field: "scenes", Message: "project has no scenes",
			})
		}
	}

	if len(project.Panels) == 0 {
		penalty += penaltyNoPanels
		result.Issues = append(result.Issues, domain.ValidationIssue{
			Type: domain.IssueError, Field: "panels", Message: "project has no panels",
		})
	} else {
		if len(project.Panels) != recommendedPanelCount {
			// 推奨からの逸脱は提案のみで減点しない
			result.Suggestions = append(result.Suggestions,
				fmt.Sprintf("consider using %d panels for a balanced narrative arc (currently %d)",
					recommendedPanelCount, len(project.Panels)))
		}
		for i := range project.Panels {
			issues := validatePanel(project, i)
			if len(issues) > 0 {
				penalty += penaltyBrokenPanel
				result.Issues = append(result.Issues, issues...)
			}
		}
	}

	bonus := characterConsistencyBonus(project) + coherenceBonus(project)

	result.Score = clampScore(100 - penalty + bonus)
	result.IsValid = !result.HasErrors()
	return result
}

// validatePanel は1パネルの構造的な健全性を確認します。
func validatePanel(project *domain.StoryboardProject, index int) []domain.ValidationIssue {
	panel := project.Panels[index]
	field := fmt.Sprintf("panels[%d]", index)

	var issues []domain.ValidationIssue

	if panel.Prompt.PanelNumber != index+1 {
		issues = append(issues, domain.ValidationIssue{
			Type:  domain.IssueError,
			Field: field,
			Message: fmt.Sprintf("panel number %d does not match position %d",
				panel.Prompt.PanelNumber, index+1),
		})
	}
	if strings.TrimSpace(panel.Prompt.GeneratedPrompt) == "" {
		issues = append(issues, domain.ValidationIssue{
			Type: domain.IssueError, Field: field, Message: "generated prompt is empty",
		})
	}

	// パネルのキャラクター参照は弱参照: プロジェクト集合の部分集合でなければならない
	for _, id := range panel.Prompt.CharacterIDs {
		if _, ok := project.FindCharacter(id); !ok {
			issues = append(issues, domain.ValidationIssue{
				Type: domain.IssueWarning, Field: field,
				Message: fmt.Sprintf("references unknown character %q", id),
			})
		}
	}
	if panel.Prompt.SceneID != "" {
		if _, ok := project.FindScene(panel.Prompt.SceneID); !ok {
			issues = append(issues, domain.ValidationIssue{
				Type: domain.IssueWarning, Field: field,
				Message: fmt.Sprintf("references unknown scene %q", panel.Prompt.SceneID),
			})
		}
	}

	return issues
}

// characterConsistencyBonus は、複数パネルに登場しプロンプト本文にも名前か
// 説明が反映されているキャラクターごとに加点します（上限あり）。
func characterConsistencyBonus(project *domain.StoryboardProject) int {
	bonus := 0
	for _, char := range project.Characters {
		echoed := 0
		for _, panel := range project.Panels {
			if !containsID(panel.Prompt.CharacterIDs, char.ID) {
				continue
			}
			lowered := strings.ToLower(panel.Prompt.GeneratedPrompt)
			if strings.Contains(lowered, strings.ToLower(char.Name)) ||
				(char.Description != "" && strings.Contains(lowered, strings.ToLower(char.Description))) {
				echoed++
			}
		}
		if echoed > 1 {
			bonus += bonusPerConsistentCharacter
		}
	}
	if bonus > maxCharacterBonus {
		bonus = maxCharacterBonus
	}
	return bonus
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
