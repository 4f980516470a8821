package runner

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shouni/go-storyboard-kit/internal/config"
	sbdom "github.com/shouni/go-storyboard-kit/pkg/domain"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	imagekit "github.com/shouni/gemini-image-kit/pkg/generator"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const defaultAspectRatio = "16:9"

// PanelImageRunner は、絵コンテの各パネル画像を生成するためのインターフェース。
type PanelImageRunner interface {
	// Run はプロジェクトの全パネルに対して画像生成を実行し、結果のリストを返す。
	Run(ctx context.Context, project *sbdom.StoryboardProject) ([]*imagedom.ImageResponse, error)
}

// StoryboardImageRunner は、キャラクターの一貫性を保ちながら並列で画像生成を行う実体。
type StoryboardImageRunner struct {
	imageGen    imagekit.ImageGenerator // 画像生成AI（Gemini）へのジェネレーター
	limit       int                     // 生成する最大パネル数の制限
	aspectRatio string                  // 全パネル共通のアスペクト比
	negative    string                  // 全パネル共通のネガティブプロンプト
}

// NewStoryboardImageRunner は、StoryboardImageRunnerの新しいインスタンスを生成して返す。
func NewStoryboardImageRunner(imgGen imagekit.ImageGenerator, limit int, aspectRatio, negative string) *StoryboardImageRunner {
	if aspectRatio == "" {
		aspectRatio = defaultAspectRatio
	}
	return &StoryboardImageRunner{
		imageGen:    imgGen,
		limit:       limit,
		aspectRatio: aspectRatio,
		negative:    negative,
	}
}

// Run は並列処理を用いて、各パネルの画像を生成するメインロジックなのだ。
func (ir *StoryboardImageRunner) Run(ctx context.Context, project *sbdom.StoryboardProject) ([]*imagedom.ImageResponse, error) {
	panels := project.Panels
	// 指定があれば、生成するパネル数を制限するのだ（テスト用などに便利！）
	if ir.limit > 0 && len(panels) > ir.limit {
		slog.Info("パネル数に制限を適用したのだ", "limit", ir.limit, "total", len(panels))
		panels = panels[:ir.limit]
	}

	images := make([]*imagedom.ImageResponse, len(panels))
	eg, egCtx := errgroup.WithContext(ctx)

	// 設定ファイルから取得した間隔で、レートリミット（流量制限）をかけるのだ
	// Burst 2 により、開始直後に2枚までは同時にリクエストを開始できるのだ
	limiter := rate.NewLimiter(rate.Every(config.DefaultRateLimit), 2)
	slog.Info("並列画像生成を開始するのだ", "count", len(panels), "interval", config.DefaultRateLimit)

	for i, panel := range panels {
		i, panel := i, panel // ゴルーチンのクロージャ対策なのだ

		eg.Go(func() error {
			// 1. レートリミットに従って、自分の番が来るまで待機するのだ
			if err := limiter.Wait(egCtx); err != nil {
				return err
			}

			// 2. パネルの主要キャラクターを特定してシードと参照画像を決めるのだ
			char, found := ir.resolveCharacter(project, panel.Prompt)

			var seedPtr *int64
			var referenceURL string
			if found {
				if char.Seed > 0 {
					seed := char.Seed
					seedPtr = &seed
				}
				referenceURL = char.ReferenceURL
			}

			slog.Info("パネルを生成中...", "panel", panel.Prompt.PanelNumber, "character", char.Name)

			// 3. 合成済みプロンプトをそのままAIに渡すのだ
			resp, err := ir.imageGen.GenerateMangaPanel(egCtx, imagedom.ImageGenerationRequest{
				Prompt:         panel.Prompt.GeneratedPrompt,
				NegativePrompt: ir.negative,
				Seed:           seedPtr,
				ReferenceURL:   referenceURL,
				AspectRatio:    ir.aspectRatio,
			})
			if err != nil {
				slog.Error("パネル生成に失敗したのだ", "panel", panel.Prompt.PanelNumber, "error", err)
				return err
			}

			images[i] = resp
			slog.Info("パネル生成に成功したのだ", "panel", panel.Prompt.PanelNumber)
			return nil
		})
	}

	// すべての並列処理が完了するのを待つのだ
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slog.Info("すべてのパネルが正常に生成されたのだ", "total", len(images))
	return images, nil
}

// resolveCharacter は、パネルの参照リストから最適なキャラクターを決定するのだ。
func (ir *StoryboardImageRunner) resolveCharacter(project *sbdom.StoryboardProject, prompt sbdom.StoryboardPrompt) (sbdom.Character, bool) {
	// 1. パネルが参照する最初の既知キャラクターを最優先で使うのだ
	for _, id := range prompt.CharacterIDs {
		if c, ok := project.FindCharacter(id); ok {
			return c, true
		}
	}

	// 2. なければプロンプト本文に名前が登場するキャラクターを探すのだ
	lowered := strings.ToLower(prompt.GeneratedPrompt)
	for _, c := range project.Characters {
		if c.Name != "" && strings.Contains(lowered, strings.ToLower(c.Name)) {
			return c, true
		}
	}

	return sbdom.Character{}, false
}
