package analyze

import (
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// styleCategory はビジュアルスタイル1分類ぶんのトリガー語彙と、
// 分類時にそのまま採用される特性リストです。
type styleCategory struct {
	style           domain.StyleName
	keywords        []string
	characteristics []string
}

// styleCascade は先頭から順に評価され、最初に一致した分類が勝ちます。
var styleCascade = []styleCategory{
	{
		style:           domain.StyleAnime,
		keywords:        []string{"anime", "manga"},
		characteristics: []string{"cel shading", "expressive eyes", "clean line art", "vibrant colors"},
	},
	{
		style:           domain.StyleToons,
		keywords:        []string{"cartoon", "toon", "caricatura", "comic strip"},
		characteristics: []string{"bold outlines", "flat colors", "exaggerated expressions", "playful shapes"},
	},
	{
		style:           domain.StyleRealistic,
		keywords:        []string{"realistic", "realista", "photorealistic", "fotorrealista", "lifelike"},
		characteristics: []string{"natural lighting", "accurate proportions", "fine surface detail"},
	},
	{
		style:           domain.StyleSketch,
		keywords:        []string{"sketch", "boceto", "pencil", "lápiz", "lapiz", "líneas", "lineas", "dibujo"},
		characteristics: []string{"loose pencil strokes", "visible construction lines", "monochrome shading"},
	},
	{
		style:           domain.StyleStoryboard,
		keywords:        []string{"storyboard", "guion gráfico", "guión gráfico", "shot list"},
		characteristics: []string{"rough framing", "camera annotations", "grayscale blocking"},
	},
}

// genericCharacteristics はフォールバック時の既定の特性です。
var genericCharacteristics = []string{"balanced composition", "neutral rendering"}

// detailedKeywords は複雑度を detailed に引き上げるトリガーです。
var detailedKeywords = []string{
	"detailed", "detallado", "intricate", "elaborate", "high detail", "ultra",
}

// AnalyzeVisualStyle は入力テキストをビジュアルスタイル分類します。
// どの分類にも一致しない場合は generic にフォールバックします。
// AnalyzeTheme と同様、同じ入力には常に同じ結果を返します。
func AnalyzeVisualStyle(input string) domain.VisualStyle {
	lowered := strings.ToLower(input)

	for _, cat := range styleCascade {
		for _, kw := range cat.keywords {
			if strings.Contains(lowered, kw) {
				return domain.VisualStyle{
					Style:           cat.style,
					Characteristics: cat.characteristics,
					Complexity:      detectComplexity(lowered),
				}
			}
		}
	}

	return domain.VisualStyle{
		Style:           domain.StyleGeneric,
		Characteristics: genericCharacteristics,
		Complexity:      detectComplexity(lowered),
	}
}

func detectComplexity(lowered string) domain.Complexity {
	for _, kw := range detailedKeywords {
		if strings.Contains(lowered, kw) {
			return domain.ComplexityDetailed
		}
	}
	return domain.ComplexitySimple
}
