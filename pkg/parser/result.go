package parser

import (
	"time"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// ParseResult は解析境界の戻り値です。解析は内部で panic しても外へは
// 伝播させず、失敗は常にこの構造体で報告されます。
type ParseResult struct {
	Success        bool                      `json:"success"`
	Project        *domain.StoryboardProject `json:"project,omitempty"`
	Errors         []string                  `json:"errors,omitempty"`
	ProcessingTime time.Duration             `json:"processing_time_ns"`
}

// failure はエラーメッセージだけを持つ失敗結果を作ります。
func failure(start time.Time, messages ...string) *ParseResult {
	return &ParseResult{
		Success:        false,
		Errors:         messages,
		ProcessingTime: time.Since(start),
	}
}
