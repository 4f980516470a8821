package cmd

import (
	"fmt"

	"github.com/shouni/go-storyboard-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は全サブコマンドで共有される実行時オプションなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Input, "input", "t", "", "解析する文章を直接指定するのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.InputFile, "input-file", "f", "", "入力ファイルのパス（'-'で標準入力なのだ）。")
	rootCmd.PersistentFlags().StringVarP(&opts.ProjectFile, "project-file", "j", config.DefaultSnapshot, "保存済みスナップショットJSONのパスなのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "成果物の保存先ディレクトリ（ローカル or gs://...）なのだ。")

	// --- 解析挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.Audience, "audience", "", "想定読者を上書き指定するのだ（children / architects / filmmakers / students）。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", config.DefaultImageModel, "使用する Gemini 画像モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.AspectRatio, "aspect-ratio", "16:9", "生成画像のアスペクト比なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")
	rootCmd.PersistentFlags().IntVarP(&opts.PanelLimit, "panel-limit", "p", config.DefaultPanelLimit, "画像を生成するパネルの最大数を指定するのだ。")

	// --- 建築モード固有設定 ---
	archCmd.Flags().StringVarP(&opts.Kind, "kind", "k", "detalles", "建築プロジェクトの種別（detalles / planos / prototipos）なのだ。")

	// --- レンダリング固有設定 ---
	renderCmd.Flags().BoolVar(&renderSingleSheet, "single-sheet", false, "全パネルを1枚のシート画像として一括生成するのだ。")
	renderCmd.Flags().BoolVar(&opts.Regenerate, "regenerate", false, "生成前に各パネルのプロンプトを再合成して上書きするのだ（編集済みパネルは保護されるのだ）。")
}

// preRunAppE は、コマンド実行前にフラグの整合性チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// 建築モードの種別はここで弾いておくと、各コマンドが楽になるのだ
	switch opts.Kind {
	case "", "detalles", "planos", "prototipos":
		return nil
	default:
		return fmt.Errorf("エラー: --kind '%s' は不正なのだ（detalles / planos / prototipos から選ぶのだ）", opts.Kind)
	}
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"ap-storyboard-go",
		addAppFlags,
		preRunAppE,
		parseCmd,
		archCmd,
		validateCmd,
		renderCmd,
		publishCmd,
	)
}
