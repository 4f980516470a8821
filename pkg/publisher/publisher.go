package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-text-format/pkg/md2htmlrunner"
)

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	MarkdownPath string   // 生成された storyboard.md のパス
	HTMLPath     string   // 生成された HTML のパス
	SnapshotPath string   // 保存されたプロジェクトJSONのパス
	ImagePaths   []string // 保存された全画像のパスリスト
}

const (
	defaultMarkdownName = "storyboard.md"
	defaultSnapshotName = "storyboard.json"
	placeholder         = "placeholder.png"
)

// StoryboardPublisher は成果物の永続化とフォーマット変換を担います。
type StoryboardPublisher struct {
	writer     remoteio.OutputWriter
	htmlRunner md2htmlrunner.Runner
}

// NewStoryboardPublisher は指定された writer と HTML ランナーを持つ
// StoryboardPublisher を生成して返します。
func NewStoryboardPublisher(writer remoteio.OutputWriter, htmlRunner md2htmlrunner.Runner) *StoryboardPublisher {
	return &StoryboardPublisher{
		writer:     writer,
		htmlRunner: htmlRunner,
	}
}

// Publish は画像の保存、Markdownの構築、HTML変換、スナップショットJSONの
// 保存を一括して実行し、生成されたファイル情報を返却するのだ！
func (p *StoryboardPublisher) Publish(ctx context.Context, project *domain.StoryboardProject, images []*imagedom.ImageResponse, opts Options) (PublishResult, error) {
	result := PublishResult{}

	// 1. 出力パスの解決
	markdown, err := ResolveOutputPath(opts.OutputDir, defaultMarkdownName)
	if err != nil {
		return result, err
	}
	result.MarkdownPath = markdown

	// 画像ディレクトリのベースパスを作成
	imgDir, err := ResolveOutputPath(opts.OutputDir, DefaultImageDir)
	if err != nil {
		return result, err
	}

	// 2. 画像の保存
	savedPaths, err := p.saveImages(ctx, images, imgDir)
	if err != nil {
		return result, fmt.Errorf("画像の書き込みに失敗しました: %w", err)
	}
	result.ImagePaths = savedPaths

	// 3. Markdown用相対パスの作成
	relativePaths := make([]string, 0, len(savedPaths))
	for _, pathStr := range savedPaths {
		relPath := path.Join(DefaultImageDir, filepath.Base(pathStr))
		relativePaths = append(relativePaths, relPath)
	}

	// 4. Markdownテキストの構築
	content := BuildStoryboardMarkdown(project, relativePaths)

	// 5. Markdownファイルの書き出し
	if err := p.writer.Write(ctx, markdown, strings.NewReader(content), "text/markdown; charset=utf-8"); err != nil {
		return result, fmt.Errorf("markdownファイルの書き込みに失敗しました: %w", err)
	}

	// 6. HTML変換と保存
	if p.htmlRunner != nil {
		slog.Info("HTMLビューアへの変換を開始します", "title", project.Title)
		htmlBuffer, err := p.htmlRunner.Run(ctx, project.Title, []byte(content))
		if err != nil {
			return result, fmt.Errorf("HTMLの変換に失敗しました: %w", err)
		}

		// Markdownの拡張子を置換してHTMLパスを生成するのだ
		htmlPath := strings.TrimSuffix(markdown, filepath.Ext(markdown)) + ".html"
		if err := p.writer.Write(ctx, htmlPath, htmlBuffer, "text/html; charset=utf-8"); err != nil {
			return result, fmt.Errorf("htmlファイルの書き込みに失敗しました: %w", err)
		}
		result.HTMLPath = htmlPath
	}

	// 7. スナップショットJSONの保存（再解析なしの再生成・再検証に使う）
	snapshotPath, err := p.SaveSnapshot(ctx, project, opts.OutputDir)
	if err != nil {
		return result, err
	}
	result.SnapshotPath = snapshotPath

	return result, nil
}

// SaveSnapshot はプロジェクト全体をJSONとして保存し、保存先パスを返します。
func (p *StoryboardPublisher) SaveSnapshot(ctx context.Context, project *domain.StoryboardProject, outputDir string) (string, error) {
	snapshotPath, err := ResolveOutputPath(outputDir, defaultSnapshotName)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return "", fmt.Errorf("スナップショットのエンコードに失敗しました: %w", err)
	}

	if err := p.writer.Write(ctx, snapshotPath, bytes.NewReader(data), "application/json; charset=utf-8"); err != nil {
		return "", fmt.Errorf("スナップショットの書き込みに失敗しました: %w", err)
	}

	return snapshotPath, nil
}

// saveImages は画像データをローカルまたはリモートストレージに保存し、パスの一覧を返します。
func (p *StoryboardPublisher) saveImages(ctx context.Context, images []*imagedom.ImageResponse, baseDir string) ([]string, error) {
	var paths []string
	for i, img := range images {
		if img == nil || len(img.Data) == 0 {
			continue
		}
		fullPath, err := PanelImagePath(baseDir, i+1)
		if err != nil {
			return nil, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
		}

		if err := p.writer.Write(ctx, fullPath, bytes.NewReader(img.Data), "image/png"); err != nil {
			return nil, fmt.Errorf("画像の書き込みに失敗しました %s: %w", fullPath, err)
		}
		paths = append(paths, fullPath)
	}
	return paths, nil
}
