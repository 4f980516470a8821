package cmd

import (
	"log/slog"

	"github.com/shouni/go-storyboard-kit/internal/config"
	"github.com/shouni/go-storyboard-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// validateCmd は、保存済みのスナップショットを検証してスコアを出すのだ。
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "保存済みの構成案を検証してスコアを出すのだ。",
	Long: `スナップショットJSONを読み込み、構造の健全性とプロンプトの
文脈整合性を0〜100のスコアで評価するのだ。errorが1件でもあれば
コマンドは失敗として終了するのだ。`,
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("検証を開始するのだ！", "project_file", cfg.Options.ProjectFile)

	return pipeline.ExecuteValidate(ctx, cfg)
}
