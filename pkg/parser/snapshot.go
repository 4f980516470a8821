package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// SnapshotLoader は保存済みプロジェクトを読み込むためのインターフェースです。
type SnapshotLoader interface {
	LoadFromPath(ctx context.Context, fullPath string) (*domain.StoryboardProject, error)
}

// ProjectSnapshotParser は JSON 形式のプロジェクトスナップショットを
// GCS URI やローカルパスから読み込んで復元する構造体です。
type ProjectSnapshotParser struct {
	reader remoteio.InputReader
}

var _ SnapshotLoader = (*ProjectSnapshotParser)(nil)

// NewProjectSnapshotParser は新しい ProjectSnapshotParser インスタンスを生成します。
func NewProjectSnapshotParser(r remoteio.InputReader) *ProjectSnapshotParser {
	return &ProjectSnapshotParser{reader: r}
}

// LoadFromPath は指定されたパスからスナップショットを読み込み、解析して
// domain.StoryboardProject を返します。
func (p *ProjectSnapshotParser) LoadFromPath(ctx context.Context, snapshotPath string) (*domain.StoryboardProject, error) {
	slog.InfoContext(ctx, "プロジェクトスナップショットを読み込んでいます", "path", snapshotPath)
	rc, err := p.reader.Open(ctx, snapshotPath)
	if err != nil {
		return nil, fmt.Errorf("スナップショットのオープンに失敗しました (%s): %w", snapshotPath, err)
	}
	defer rc.Close()

	project := &domain.StoryboardProject{}
	if err := json.NewDecoder(rc).Decode(project); err != nil {
		return nil, fmt.Errorf("スナップショットJSONのパースに失敗しました: %w", err)
	}

	if project.ID == "" || len(project.Panels) == 0 {
		return nil, fmt.Errorf("スナップショットが不完全です (id=%q, panels=%d)", project.ID, len(project.Panels))
	}

	return project, nil
}
