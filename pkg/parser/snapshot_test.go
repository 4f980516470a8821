package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"
)

// fakeReader は remoteio.InputReader を満たすテスト用のリーダーなのだ。
type fakeReader struct {
	files map[string][]byte
}

func (r *fakeReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	data, ok := r.files[uri]
	if !ok {
		return nil, fmt.Errorf("not found: %s", uri)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (r *fakeReader) List(ctx context.Context, uri string, fn func(string) error) error {
	return nil
}

func TestProjectSnapshotParser_LoadFromPath(t *testing.T) {
	validSnapshot := []byte(`{
		"id": "sb-abc123",
		"title": "Luna in the Park",
		"user_input": "a story about Luna in the park",
		"style": "anime",
		"project_type": "storyboard",
		"characters": [],
		"scenes": [],
		"panels": [
			{"prompt": {"panel_number": 1, "panel_type": "establishing", "composition": "wide", "scene_description": "a city park", "generated_prompt": "anime style, wide shot"}}
		]
	}`)

	reader := &fakeReader{files: map[string][]byte{
		"output/storyboard.json": validSnapshot,
		"output/empty.json":      []byte(`{"id": "", "panels": []}`),
		"output/broken.json":     []byte(`{not json`),
	}}

	// ProjectSnapshotParser は SnapshotLoader として利用される
	var loader SnapshotLoader = NewProjectSnapshotParser(reader)

	t.Run("正常なスナップショットを復元できるのだ", func(t *testing.T) {
		project, err := loader.LoadFromPath(context.Background(), "output/storyboard.json")
		if err != nil {
			t.Fatalf("予期しないエラーなのだ: %v", err)
		}
		if project.ID != "sb-abc123" || len(project.Panels) != 1 {
			t.Errorf("復元結果が不正なのだ: id=%q panels=%d", project.ID, len(project.Panels))
		}
	})

	t.Run("不完全なスナップショットは拒否するのだ", func(t *testing.T) {
		if _, err := loader.LoadFromPath(context.Background(), "output/empty.json"); err == nil {
			t.Fatal("IDもパネルもないスナップショットはエラーになるはずなのだ")
		}
	})

	t.Run("壊れたJSONはエラーなのだ", func(t *testing.T) {
		if _, err := loader.LoadFromPath(context.Background(), "output/broken.json"); err == nil {
			t.Fatal("エラーが返るはずなのだ")
		}
	})

	t.Run("存在しないパスはエラーなのだ", func(t *testing.T) {
		if _, err := loader.LoadFromPath(context.Background(), "output/missing.json"); err == nil {
			t.Fatal("エラーが返るはずなのだ")
		}
	})
}
