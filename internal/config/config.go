package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultModel       = "gemini-3-flash-preview"
	DefaultImageModel  = "gemini-3-pro-image-preview"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultPanelLimit  = 12
	DefaultRateLimit   = 30 * time.Second
	DefaultOutputDir   = "output"                 // パブリッシャーで使用するデフォルト保存先なのだ
	DefaultSnapshot    = "output/storyboard.json" // 解析結果スナップショットのデフォルト保存先なのだ

	// 画像生成時に全パネル共通で排除する要素なのだ
	DefaultNegativePrompt = "speech bubble, dialogue balloon, text, alphabet, letters, words, signatures, watermark, username, low quality, distorted, bad anatomy"
)

// Config はアプリケーション全体の環境設定（APIキーやクラウド設定）を保持する構造体なのだ。
type Config struct {
	ProjectID        string
	LocationID       string
	GeminiAPIKey     string
	GeminiModel      string
	GeminiImageModel string
	NegativePrompt   string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		ProjectID:        envutil.GetEnv("PROJECT_ID", ""),
		LocationID:       envutil.GetEnv("REGION", ""),
		GeminiAPIKey:     envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:      envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		GeminiImageModel: envutil.GetEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
		NegativePrompt:   envutil.GetEnv("IMAGE_NEGATIVE_PROMPT", DefaultNegativePrompt),
	}
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	Input       string // --input: 解析する文章を直接指定
	InputFile   string // --input-file: 文章ファイルのパス（'-'で標準入力）
	ProjectFile string // --project-file: 保存済みスナップショットJSONのパス

	// 生成結果の出力設定
	OutputDir string // --output-dir: 成果物の保存先（ローカル or gs://...）

	// 解析挙動設定
	Kind     string // --kind: 建築モードの種別（detalles / planos / prototipos）
	Audience string // --audience: 想定読者の上書き指定

	// 画像生成関連
	ImageModel  string // --image-model: 画像生成用のGeminiモデル
	AspectRatio string // --aspect-ratio
	PanelLimit  int    // --panel-limit: 画像を生成する最大パネル数
	Regenerate  bool   // --regenerate: 生成前にプロンプトを再合成して上書きする

	// 実行制御
	HTTPTimeout time.Duration // --http-timeout
}
