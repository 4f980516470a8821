package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-storyboard-kit/internal/config"
	"github.com/shouni/go-storyboard-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// archCmd は、建築図面モードで入力を解析するサブコマンドなのだ。
// 物語ではなく、固定のディテールレベル進行に沿ったCAD風パネルを組み立てるのだ。
var archCmd = &cobra.Command{
	Use:   "arch",
	Short: "建築図面モードで構成案を作るのだ。",
	Long: `入力文章から部材、材料、寸法、縮尺、設計基準を抽出し、
種別（detalles / planos / prototipos）ごとの固定シーケンスに沿った
技術図面風のパネル構成案を保存するのだ。`,
	RunE: archCommand,
}

func archCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.Input == "" && opts.InputFile == "" && !isStdin() {
		return fmt.Errorf("ソース（--input または --input-file）を指定してほしいのだ")
	}
	if opts.Input == "" && opts.InputFile == "" {
		opts.InputFile = "-"
	}

	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("建築図面解析パイプラインを起動するのだ！",
		"kind", cfg.Options.Kind,
		"output_dir", cfg.Options.OutputDir)

	if err := pipeline.ExecuteParse(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての解析工程が完了したのだ！")
	return nil
}
