package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-storyboard-kit/internal/config"
	"github.com/shouni/go-storyboard-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// renderSingleSheet は --single-sheet フラグの値なのだ。
var renderSingleSheet bool

// renderCmd は、スナップショットからパネル画像を生成するサブコマンドなのだ。
// 解析をスキップして、画像生成とパブリッシュのみを行うのだ。
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "構成案JSONからパネル画像を生成して保存するのだ。",
	Long: `すでに解析・修正済みのスナップショットJSONを読み込み、各パネルの
画像生成と成果物の保存を実行するのだ。解析のコストを抑えつつ、
画像の再生成や調整を行いたい場合に便利なのだ。`,
	RunE: renderCommand,
}

func renderCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。画像生成には必須なのだ")
	}

	cfg := config.LoadConfig()
	cfg.Options = opts
	cfg.GeminiImageModel = opts.ImageModel

	slog.Info("画像生成モードを起動するのだ！",
		"project_file", cfg.Options.ProjectFile,
		"output_dir", cfg.Options.OutputDir,
		"image_model", cfg.GeminiImageModel,
		"single_sheet", renderSingleSheet)

	if renderSingleSheet {
		return pipeline.ExecuteRenderSheet(ctx, cfg)
	}
	return pipeline.ExecuteRender(ctx, cfg)
}
