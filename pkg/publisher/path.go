package publisher

import (
	"github.com/shouni/go-utils/urlpath"
)

const (
	// DefaultImageDir は生成された画像を格納するデフォルトのディレクトリ名です。
	DefaultImageDir = "images"
	// DefaultPanelFileName はパネル画像の共通のベースファイル名です。
	DefaultPanelFileName = "panel.png"
)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// GCS/ローカルを考慮した最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolveOutputPath(baseDir, fileName)
}

// PanelImagePath は、画像ディレクトリとパネル番号から連番付きの
// 画像パス (images/panel_1.png 等) を生成します。index は1以上です。
func PanelImagePath(baseDir string, index int) (string, error) {
	basePath, err := urlpath.ResolveOutputPath(baseDir, DefaultPanelFileName)
	if err != nil {
		return "", err
	}
	return urlpath.GenerateIndexedPath(basePath, index)
}
