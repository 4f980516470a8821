package pipeline

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/gemini-image-kit/pkg/generator"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

const (
	defaultCacheExpiration = 30 * time.Minute
	cacheCleanupInterval   = 1 * time.Hour
	defaultCacheTTL        = 1 * time.Hour
)

// InitializeImageGenerator は ImageGeneratorを初期化します。
// 参照画像の取得結果はプロセス内キャッシュに保持され、同一パネルの
// 再生成時に再ダウンロードを避けます。
func InitializeImageGenerator(
	aiClient gemini.GenerativeModel,
	reader remoteio.InputReader,
	httpClient httpkit.ClientInterface,
	model string,
) (generator.ImageGenerator, error) {
	imgCache := cache.New(defaultCacheExpiration, cacheCleanupInterval)

	// 画像処理コアを生成
	core, err := generator.NewGeminiImageCore(
		aiClient,
		reader,
		httpClient,
		imgCache,
		defaultCacheTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("GeminiImageCoreの初期化に失敗したのだ: %w", err)
	}

	imgGen, err := generator.NewGeminiGenerator(
		core,
		aiClient,
		model,
	)
	if err != nil {
		return nil, fmt.Errorf("GeminiGeneratorの初期化に失敗したのだ: %w", err)
	}

	return imgGen, nil
}
