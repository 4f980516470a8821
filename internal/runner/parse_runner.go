package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shouni/go-storyboard-kit/internal/config"
	sbdom "github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/parser"
	"github.com/shouni/go-storyboard-kit/pkg/validate"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// ParseRunner は、入力文章から絵コンテプロジェクトを構築するためのインターフェースなのだ。
type ParseRunner interface {
	// Run は解析パイプラインを実行し、プロジェクトと検証結果を返すのだ。
	Run(ctx context.Context) (*sbdom.StoryboardProject, sbdom.ValidationResult, error)
}

// StoryboardParseRunner は、自然言語の入力から絵コンテの構成案を組み立てる核となる構造体なのだ。
type StoryboardParseRunner struct {
	cfg    config.Config        // 実行時のコマンドライン引数や設定
	reader remoteio.InputReader // ローカルやGCSのファイルを読み込むリーダー
}

// NewStoryboardParseRunner は、StoryboardParseRunnerの新しいインスタンスを生成して返すのだ。
func NewStoryboardParseRunner(cfg config.Config, r remoteio.InputReader) *StoryboardParseRunner {
	return &StoryboardParseRunner{
		cfg:    cfg,
		reader: r,
	}
}

// Run は、入力ソースの読み込み、解析、検証を一気に行うのだ。
func (pr *StoryboardParseRunner) Run(ctx context.Context) (*sbdom.StoryboardProject, sbdom.ValidationResult, error) {
	// 1. 入力ソース（インライン、ファイル、標準入力）からテキストを読み込むのだ
	input, err := pr.readInputContent(ctx)
	if err != nil {
		return nil, sbdom.ValidationResult{}, err
	}

	// 2. モードに応じた解析を実行するのだ
	result := pr.parse(input)
	if !result.Success {
		return nil, sbdom.ValidationResult{}, fmt.Errorf("解析に失敗したのだ: %s", strings.Join(result.Errors, "; "))
	}

	slog.Info("解析が完了したのだ",
		"project_id", result.Project.ID,
		"panels", len(result.Project.Panels),
		"elapsed", result.ProcessingTime,
	)

	// 3. 組み上がったプロジェクトをスコアリングするのだ
	validation := validate.ValidateStoryboardProject(result.Project)

	return result.Project, validation, nil
}

// parse は kind の指定に応じてストーリーボード解析と建築解析を切り替えるのだ。
func (pr *StoryboardParseRunner) parse(input string) *parser.ParseResult {
	if kind := pr.cfg.Options.Kind; kind != "" {
		return parser.ParseArchitecturalInput(input, sbdom.ArchitecturalKind(kind))
	}
	return parser.ParseUserInputForAudience(input, pr.cfg.Options.Audience)
}

// readInputContent は、オプションの設定に基づいて適切な方法で入力テキストを取得するのだ。
func (pr *StoryboardParseRunner) readInputContent(ctx context.Context) (string, error) {
	// インライン指定が最優先なのだ
	if pr.cfg.Options.Input != "" {
		return pr.cfg.Options.Input, nil
	}

	// '-' は標準入力から読むのだ
	if pr.cfg.Options.InputFile == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("標準入力の読み込みに失敗したのだ: %w", err)
		}
		return string(data), nil
	}

	if pr.cfg.Options.InputFile == "" {
		return "", fmt.Errorf("入力ソース（--input または --input-file）を指定してほしいのだ")
	}

	// ファイルパスが指定されている場合は、リーダーを使って開くのだ（GCS等も対応！）
	rc, err := pr.reader.Open(ctx, pr.cfg.Options.InputFile)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
