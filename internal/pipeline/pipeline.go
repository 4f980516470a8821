package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-storyboard-kit/internal/builder"
	"github.com/shouni/go-storyboard-kit/internal/config"
	"github.com/shouni/go-storyboard-kit/pkg/analyze"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/extract"
	"github.com/shouni/go-storyboard-kit/pkg/parser"
	"github.com/shouni/go-storyboard-kit/pkg/prompts"
	"github.com/shouni/go-storyboard-kit/pkg/publisher"
	"github.com/shouni/go-storyboard-kit/pkg/validate"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

// ExecuteParse は入力文章を解析し、スナップショットJSONとして保存するのだ。
// 解析自体にAIは不要なので、Geminiクライアントは初期化しないのだ。
func ExecuteParse(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg, false)
	if err != nil {
		return err
	}

	parseRunner := builder.BuildParseRunner(appCtx)
	project, validation, err := parseRunner.Run(ctx)
	if err != nil {
		return err
	}

	reportValidation(validation)

	// スナップショットの保存（HTML変換は不要なので htmlRunner は渡さない）
	pub := publisher.NewStoryboardPublisher(appCtx.Writer, nil)
	snapshotPath, err := pub.SaveSnapshot(ctx, project, cfg.Options.OutputDir)
	if err != nil {
		return err
	}

	slog.Info("解析結果を保存したのだ！", "path", snapshotPath, "score", validation.Score)
	return nil
}

// ExecuteValidate は保存済みスナップショットを読み込み、検証レポートを出すのだ。
func ExecuteValidate(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg, false)
	if err != nil {
		return err
	}

	project, err := loadSnapshot(ctx, appCtx, cfg)
	if err != nil {
		return err
	}

	validation := validate.ValidateStoryboardProject(project)
	reportValidation(validation)

	if !validation.IsValid {
		return fmt.Errorf("プロジェクト '%s' の検証でエラーが見つかったのだ (score=%d)", project.ID, validation.Score)
	}

	slog.Info("検証に合格したのだ！", "project_id", project.ID, "score", validation.Score)
	return nil
}

// ExecuteRender はスナップショットからパネル画像を生成し、成果物を保存するのだ。
func ExecuteRender(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg, true)
	if err != nil {
		return err
	}

	project, err := loadSnapshot(ctx, appCtx, cfg)
	if err != nil {
		return err
	}

	if cfg.Options.Regenerate {
		regeneratePrompts(cfg, project)
	}

	// --- Phase 1: Image Phase (パネル画像の並列生成) ---
	slog.Info("パネル画像の生成を開始するのだ...", "panels", len(project.Panels))
	imageRunner, err := builder.BuildPanelImageRunner(ctx, appCtx)
	if err != nil {
		return fmt.Errorf("ImageRunnerの構築に失敗したのだ: %w", err)
	}

	images, err := imageRunner.Run(ctx, project)
	if err != nil {
		return fmt.Errorf("画像生成に失敗したのだ: %w", err)
	}

	// --- Phase 2: Publish Phase (公開/保存) ---
	return publishProject(ctx, appCtx, project, images)
}

// ExecuteRenderSheet は全パネルを1枚のシート画像として一括生成するのだ。
func ExecuteRenderSheet(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg, true)
	if err != nil {
		return err
	}

	project, err := loadSnapshot(ctx, appCtx, cfg)
	if err != nil {
		return err
	}

	if cfg.Options.Regenerate {
		regeneratePrompts(cfg, project)
	}

	sheetRunner, err := builder.BuildSheetImageRunner(ctx, appCtx)
	if err != nil {
		return fmt.Errorf("SheetImageRunnerの構築に失敗したのだ: %w", err)
	}

	slog.Info("1枚のシートとして一括生成を開始するのだ...")
	resp, err := sheetRunner.Run(ctx, project)
	if err != nil {
		return err
	}

	outputPath, err := publisher.ResolveOutputPath(cfg.Options.OutputDir, "storyboard_sheet.png")
	if err != nil {
		return err
	}
	if err := appCtx.Writer.Write(ctx, outputPath, bytes.NewReader(resp.Data), resp.MimeType); err != nil {
		return fmt.Errorf("シート画像の保存に失敗したのだ: %w", err)
	}

	slog.Info("シートが完成したのだ！", "path", outputPath)
	return nil
}

// ExecutePublish は画像生成を行わず、スナップショットからMarkdownとHTMLを再構築するのだ。
func ExecutePublish(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg, false)
	if err != nil {
		return err
	}

	project, err := loadSnapshot(ctx, appCtx, cfg)
	if err != nil {
		return err
	}

	return publishProject(ctx, appCtx, project, nil)
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
// withAI が false の場合、Geminiクライアントは初期化しない（解析・検証はオフラインで動くのだ）。
func setupAppContext(ctx context.Context, cfg *config.Config, withAI bool) (*builder.AppContext, error) {
	httpClient := httpkit.New(cfg.Options.HTTPTimeout)

	var aiClient gemini.GenerativeModel
	if withAI {
		var err error
		aiClient, err = builder.InitializeAIClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create ai client: %w", err)
		}
	}

	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	appCtx := builder.NewAppContext(cfg, httpClient, aiClient, reader, writer)
	return &appCtx, nil
}

// regeneratePrompts は保存済みプロジェクトの全パネルプロンプトを決定論的に
// 再合成するのだ。IsEdited が立っているパネルは手編集を尊重して残すのだ。
func regeneratePrompts(cfg *config.Config, project *domain.StoryboardProject) {
	panelPrompts := project.Prompts()

	if project.ProjectType == domain.ProjectArchitectural && project.Architectural != nil {
		panelPrompts = prompts.GenerateArchitecturalPanelPrompts(panelPrompts, *project.Architectural, project.Architectural.Kind)
	} else {
		theme := analyze.AnalyzeTheme(project.UserInput)
		style := analyze.AnalyzeVisualStyle(project.UserInput)
		audience := cfg.Options.Audience
		if audience == "" {
			audience = extract.DetectAudience(project.UserInput)
		}
		pb := prompts.NewPromptBuilder(theme, style, audience)
		panelPrompts = pb.BuildAll(panelPrompts, project.Characters, project.Scenes)
	}

	// 手編集されたパネルの合成結果は破棄して元のプロンプトを維持する
	for i, panel := range project.Panels {
		if panel.IsEdited && i < len(panelPrompts) {
			panelPrompts[i] = panel.Prompt
		}
	}

	project.ReplacePrompts(panelPrompts)
	slog.Info("プロンプトを再合成したのだ", "panels", len(panelPrompts))
}

// loadSnapshot は --project-file で指定されたスナップショットを読み込むのだ。
func loadSnapshot(ctx context.Context, appCtx *builder.AppContext, cfg *config.Config) (*domain.StoryboardProject, error) {
	var loader parser.SnapshotLoader = parser.NewProjectSnapshotParser(appCtx.Reader)
	project, err := loader.LoadFromPath(ctx, cfg.Options.ProjectFile)
	if err != nil {
		return nil, fmt.Errorf("スナップショット '%s' の読み込みに失敗したのだ: %w", cfg.Options.ProjectFile, err)
	}
	return project, nil
}

// publishProject は PublishRunner を使って最終成果物を保存するのだ。
func publishProject(ctx context.Context, appCtx *builder.AppContext, project *domain.StoryboardProject, images []*imagedom.ImageResponse) error {
	slog.Info("公開処理を開始するのだ...")
	publishRunner, err := builder.BuildPublishRunner(ctx, appCtx)
	if err != nil {
		return fmt.Errorf("PublishRunnerの構築に失敗したのだ: %w", err)
	}

	result, err := publishRunner.Run(ctx, project, images)
	if err != nil {
		return fmt.Errorf("公開処理に失敗したのだ: %w", err)
	}

	slog.Info("成果物を保存したのだ！",
		"markdown", result.MarkdownPath,
		"html", result.HTMLPath,
		"snapshot", result.SnapshotPath,
		"images", len(result.ImagePaths),
	)
	return nil
}

// reportValidation は検証結果を構造化ログとして出力するのだ。
func reportValidation(v domain.ValidationResult) {
	slog.Info("検証スコアなのだ", "score", v.Score, "valid", v.IsValid)
	for _, issue := range v.Issues {
		switch issue.Type {
		case domain.IssueError:
			slog.Error("検証エラーなのだ", "field", issue.Field, "message", issue.Message)
		default:
			slog.Warn("検証の指摘なのだ", "type", issue.Type, "field", issue.Field, "message", issue.Message)
		}
	}
	for _, s := range v.Suggestions {
		slog.Info("改善提案なのだ", "suggestion", s)
	}
}
