package runner

import (
	"context"

	"github.com/shouni/go-storyboard-kit/internal/config"
	sbdom "github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/publisher"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
)

// PublishRunner はパブリッシュ処理のインターフェースです。
type PublishRunner interface {
	Run(ctx context.Context, project *sbdom.StoryboardProject, images []*imagedom.ImageResponse) (publisher.PublishResult, error)
}

// DefaultPublishRunner は pkg/publisher を利用した標準実装です。
type DefaultPublishRunner struct {
	options   config.GenerateOptions
	publisher *publisher.StoryboardPublisher
}

func NewDefaultPublishRunner(options config.GenerateOptions, pub *publisher.StoryboardPublisher) *DefaultPublishRunner {
	return &DefaultPublishRunner{
		options:   options,
		publisher: pub,
	}
}

func (pr *DefaultPublishRunner) Run(ctx context.Context, project *sbdom.StoryboardProject, images []*imagedom.ImageResponse) (publisher.PublishResult, error) {
	// internal/config の値を pkg/publisher 用の構造体に詰め替えます。
	opts := publisher.Options{
		OutputDir: pr.options.OutputDir,
	}

	return pr.publisher.Publish(ctx, project, images, opts)
}
