package validate

import (
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/analyze"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// coherenceBonus は元の入力文からテーマと画風を引き直し、各パネルの
// 生成済みプロンプトとの語彙的な一致度を加点に変換します。
// 解析が決定的なので、同じプロジェクトには常に同じボーナスが付きます。
func coherenceBonus(project *domain.StoryboardProject) int {
	if project.UserInput == "" || len(project.Panels) == 0 {
		return 0
	}

	theme := analyze.AnalyzeTheme(project.UserInput)
	style := analyze.AnalyzeVisualStyle(project.UserInput)

	themeHits := 0
	styleHits := 0
	for _, panel := range project.Panels {
		lowered := strings.ToLower(panel.Prompt.GeneratedPrompt)
		if matchesAny(lowered, themeTerms(theme)) {
			themeHits++
		}
		if matchesAny(lowered, styleTerms(style)) {
			styleHits++
		}
	}

	total := len(project.Panels)
	bonus := maxThemeBonus * themeHits / total
	bonus += maxStyleBonus * styleHits / total
	return bonus
}

// ValidateContextualPrompt は単一プロンプトを元入力との文脈で検証します。
// 空プロンプトは error、テーマ語彙の欠落は提案として報告します。
func ValidateContextualPrompt(prompt domain.StoryboardPrompt, userInput string) domain.ValidationResult {
	result := domain.ValidationResult{Score: 100}

	lowered := strings.ToLower(prompt.GeneratedPrompt)
	if strings.TrimSpace(prompt.GeneratedPrompt) == "" {
		result.Score = 0
		result.Issues = append(result.Issues, domain.ValidationIssue{
			Type: domain.IssueError, Field: "generated_prompt", Message: "generated prompt is empty",
		})
		result.IsValid = false
		return result
	}

	theme := analyze.AnalyzeTheme(userInput)
	style := analyze.AnalyzeVisualStyle(userInput)

	if !matchesAny(lowered, themeTerms(theme)) {
		result.Score = clampScore(result.Score - 15)
		result.Suggestions = append(result.Suggestions,
			"prompt does not echo the main theme of the original input")
	}
	if !matchesAny(lowered, styleTerms(style)) {
		result.Score = clampScore(result.Score - 10)
		result.Suggestions = append(result.Suggestions,
			"prompt does not echo the requested visual style")
	}
	if prompt.SceneDescription != "" && !strings.Contains(lowered, strings.ToLower(prompt.SceneDescription)) {
		result.Issues = append(result.Issues, domain.ValidationIssue{
			Type: domain.IssueWarning, Field: "generated_prompt",
			Message: "scene description is not reflected in the generated prompt",
		})
		result.Score = clampScore(result.Score - 5)
	}

	result.IsValid = !result.HasErrors()
	return result
}

func themeTerms(theme domain.ThemeAnalysis) []string {
	terms := make([]string, 0, len(theme.Concepts)+2)
	terms = append(terms, theme.Concepts...)
	if theme.MainSubject != "" {
		terms = append(terms, theme.MainSubject)
	}
	if theme.Location != "" {
		terms = append(terms, theme.Location)
	}
	return terms
}

func styleTerms(style domain.VisualStyle) []string {
	terms := make([]string, 0, len(style.Characteristics)+1)
	terms = append(terms, string(style.Style))
	terms = append(terms, style.Characteristics...)
	return terms
}

func matchesAny(lowered string, terms []string) bool {
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}
