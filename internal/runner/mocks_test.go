package runner

import (
	"context"
	"sync"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
)

// mockImageGenerator は generator.ImageGenerator を満たすテスト用の実装なのだ。
// 受け取ったリクエストを記録して、固定のレスポンスを返すのだ。
type mockImageGenerator struct {
	mu        sync.Mutex
	panelReqs []imagedom.ImageGenerationRequest
	pageReqs  []imagedom.ImagePageRequest
	err       error
}

func (m *mockImageGenerator) GenerateMangaPanel(_ context.Context, req imagedom.ImageGenerationRequest) (*imagedom.ImageResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.panelReqs = append(m.panelReqs, req)
	return &imagedom.ImageResponse{Data: []byte("panel-image"), MimeType: "image/png"}, nil
}

func (m *mockImageGenerator) GenerateMangaPage(_ context.Context, req imagedom.ImagePageRequest) (*imagedom.ImageResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.pageReqs = append(m.pageReqs, req)
	return &imagedom.ImageResponse{Data: []byte("sheet-image"), MimeType: "image/png"}, nil
}
