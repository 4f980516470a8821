package analyze

import "regexp"

var (
	// YearRegex は "1492" や "1940s" のような年号表記を捕捉します。
	YearRegex = regexp.MustCompile(`\b(\d{3,4}s?)\b`)

	// CenturyRegex は英語・スペイン語の世紀表記を捕捉します。
	CenturyRegex = regexp.MustCompile(`(?i)\b(\d+(?:st|nd|rd|th)\s+century|siglo\s+[IVXLCDM]+)\b`)

	// sentenceSplitRegex はテーマ概念抽出で使う文区切りです。
	sentenceSplitRegex = regexp.MustCompile(`[.!?;]+`)
)
