package builder

import (
	"context"
	"fmt"

	"github.com/shouni/go-storyboard-kit/internal/runner"
	sbpipeline "github.com/shouni/go-storyboard-kit/pkg/pipeline"
	"github.com/shouni/go-storyboard-kit/pkg/publisher"

	"github.com/shouni/gemini-image-kit/pkg/generator"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-text-format/pkg/builder"
	"google.golang.org/genai"
)

// BuildParseRunner は入力文章の解析を担当する Runner を構築します。
func BuildParseRunner(appCtx *AppContext) runner.ParseRunner {
	return runner.NewStoryboardParseRunner(*appCtx.Config, appCtx.Reader)
}

// BuildPanelImageRunner は個別パネル画像生成を担当する Runner を構築します。
func BuildPanelImageRunner(ctx context.Context, appCtx *AppContext) (runner.PanelImageRunner, error) {
	imgGen, err := InitializeImageGenerator(appCtx)
	if err != nil {
		return nil, fmt.Errorf("GeminiGeneratorの初期化に失敗したのだ: %w", err)
	}

	return runner.NewStoryboardImageRunner(
		imgGen,
		appCtx.Options.PanelLimit,
		appCtx.Options.AspectRatio,
		appCtx.Config.NegativePrompt,
	), nil
}

// BuildSheetImageRunner は全パネル一括のシート生成を担当する Runner を構築します。
func BuildSheetImageRunner(ctx context.Context, appCtx *AppContext) (*runner.SheetImageRunner, error) {
	imgGen, err := InitializeImageGenerator(appCtx)
	if err != nil {
		return nil, fmt.Errorf("GeminiGeneratorの初期化に失敗したのだ: %w", err)
	}

	return runner.NewSheetImageRunner(
		imgGen,
		appCtx.Options.AspectRatio,
		appCtx.Config.NegativePrompt,
	), nil
}

// BuildPublishRunner はコンテンツ保存と変換を行う Runner を構築します。
func BuildPublishRunner(ctx context.Context, appCtx *AppContext) (runner.PublishRunner, error) {
	htmlCfg := builder.BuilderConfig{
		EnableHardWraps: true,
		Mode:            "webtoon",
	}
	md2htmlBuilder, err := builder.NewBuilder(htmlCfg)
	if err != nil {
		return nil, fmt.Errorf("md2htmlBuilderの初期化に失敗しました: %w", err)
	}

	md2htmlRunner, err := md2htmlBuilder.BuildRunner()
	if err != nil {
		return nil, fmt.Errorf("MarkdownToHtmlRunnerの初期化に失敗しました: %w", err)
	}

	pub := publisher.NewStoryboardPublisher(appCtx.Writer, md2htmlRunner)
	return runner.NewDefaultPublishRunner(appCtx.Options, pub), nil
}

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	const defaultGeminiTemperature = float32(0.2)
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// InitializeImageGenerator は ImageGeneratorを初期化します。
func InitializeImageGenerator(appCtx *AppContext) (generator.ImageGenerator, error) {
	imgGen, err := sbpipeline.InitializeImageGenerator(
		appCtx.aiClient,
		appCtx.Reader,
		appCtx.httpClient,
		appCtx.Config.GeminiImageModel,
	)
	if err != nil {
		return nil, fmt.Errorf("GeminiGeneratorの初期化に失敗したのだ: %w", err)
	}

	return imgGen, nil
}
