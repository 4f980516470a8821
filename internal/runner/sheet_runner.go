package runner

import (
	"context"
	"fmt"
	"strings"

	sbdom "github.com/shouni/go-storyboard-kit/pkg/domain"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	imagekit "github.com/shouni/gemini-image-kit/pkg/generator"
)

// SheetImageRunner は全パネルを1枚のシートとして一括生成するランナーなのだ。
// コマ単位の生成と違い、全パネルの指示を統合した1つのプロンプトでAIに
// レイアウトまで任せるのだ。
type SheetImageRunner struct {
	imageGen    imagekit.ImageGenerator
	aspectRatio string
	negative    string
}

func NewSheetImageRunner(imgGen imagekit.ImageGenerator, aspectRatio, negative string) *SheetImageRunner {
	if aspectRatio == "" {
		aspectRatio = defaultAspectRatio
	}
	return &SheetImageRunner{
		imageGen:    imgGen,
		aspectRatio: aspectRatio,
		negative:    negative,
	}
}

// Run はプロジェクト全体を1枚の画像として生成するのだ。
func (sr *SheetImageRunner) Run(ctx context.Context, project *sbdom.StoryboardProject) (*imagedom.ImageResponse, error) {
	if len(project.Panels) == 0 {
		return nil, fmt.Errorf("パネルが1枚もないのだ")
	}

	prompt := sr.buildSheetPrompt(project)

	var seedPtr *int64
	if len(project.Characters) > 0 && project.Characters[0].Seed > 0 {
		seed := project.Characters[0].Seed
		seedPtr = &seed
	}

	resp, err := sr.imageGen.GenerateMangaPage(ctx, imagedom.ImagePageRequest{
		Prompt:         prompt,
		NegativePrompt: sr.negative,
		AspectRatio:    sr.aspectRatio,
		ReferenceURLs:  characterReferenceURLs(project),
		Seed:           seedPtr,
	})
	if err != nil {
		return nil, fmt.Errorf("シート一括生成に失敗したのだ: %w", err)
	}

	return resp, nil
}

// buildSheetPrompt は全パネルの合成済みプロンプトを番号付きで連結するのだ。
func (sr *SheetImageRunner) buildSheetPrompt(project *sbdom.StoryboardProject) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("a single sheet with %d numbered storyboard panels arranged in reading order.\n", len(project.Panels)))

	for _, panel := range project.Panels {
		sb.WriteString(fmt.Sprintf("panel %d: %s\n", panel.Prompt.PanelNumber, panel.Prompt.GeneratedPrompt))
	}

	return sb.String()
}

func characterReferenceURLs(project *sbdom.StoryboardProject) []string {
	var urls []string
	for _, c := range project.Characters {
		if c.ReferenceURL != "" {
			urls = append(urls, c.ReferenceURL)
		}
	}
	return urls
}
