package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-storyboard-kit/internal/config"
	"github.com/shouni/go-storyboard-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// parseCmd は、自然言語の文章を解析して絵コンテプロジェクトを構築するのだ。
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "文章を解析して絵コンテの構成案を作るのだ。",
	Long: `自然言語の文章からキャラクター、シーン、パネル進行を抽出し、
各パネルの画像生成プロンプトまで合成した構成案JSONを保存するのだ。
AIは使わないので、オフラインでも動くのだよ。`,
	RunE: parseCommand,
}

func parseCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.Input == "" && opts.InputFile == "" && !isStdin() {
		return fmt.Errorf("ソース（--input または --input-file）を指定してほしいのだ")
	}
	if opts.Input == "" && opts.InputFile == "" {
		opts.InputFile = "-"
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.Options = opts
	cfg.Options.Kind = "" // parse は常にストーリーボードモードなのだ

	slog.Info("絵コンテ解析パイプラインを起動するのだ！",
		"input_file", cfg.Options.InputFile,
		"output_dir", cfg.Options.OutputDir)

	if err := pipeline.ExecuteParse(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての解析工程が完了したのだ！")
	return nil
}

func isStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
