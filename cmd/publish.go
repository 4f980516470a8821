package cmd

import (
	"log/slog"

	"github.com/shouni/go-storyboard-kit/internal/config"
	"github.com/shouni/go-storyboard-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// publishCmd は、画像生成なしでMarkdownとHTMLを再構築するサブコマンドなのだ。
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "構成案JSONからMarkdownとHTMLを再構築するのだ。",
	Long: `スナップショットJSONを読み込み、画像生成をスキップして
Markdown構成表とHTMLビューアだけを再構築するのだ。
プロンプトを手で修正した後の確認に便利なのだ。`,
	RunE: publishCommand,
}

func publishCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("公開モードを起動するのだ！",
		"project_file", cfg.Options.ProjectFile,
		"output_dir", cfg.Options.OutputDir)

	return pipeline.ExecutePublish(ctx, cfg)
}
