package domain

// IssueType は検証で検出された問題の深刻度です。
// error のみが IsValid の判定に影響します。
type IssueType string

const (
	IssueError      IssueType = "error"
	IssueWarning    IssueType = "warning"
	IssueSuggestion IssueType = "suggestion"
)

// ValidationIssue は検証で検出された個別の問題です。
type ValidationIssue struct {
	Type    IssueType `json:"type"`
	Field   string    `json:"field"`
	Message string    `json:"message"`
}

// ValidationResult はプロジェクト検証の結果です。
// Score は常に [0, 100] の範囲に収まります。
type ValidationResult struct {
	IsValid     bool              `json:"is_valid"`
	Score       int               `json:"score"`
	Issues      []ValidationIssue `json:"issues"`
	Suggestions []string          `json:"suggestions"`
}

// HasErrors は error タイプの問題が1件でも含まれるかを返します。
func (r ValidationResult) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Type == IssueError {
			return true
		}
	}
	return false
}
