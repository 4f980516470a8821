package analyze

import (
	"reflect"
	"testing"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

func TestAnalyzeTheme(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.ThemeType
	}{
		{"歴史テーマ", "the war of independence in 1810", domain.ThemeHistorical},
		{"教育テーマ", "explain how photosynthesis works", domain.ThemeEducational},
		{"技術テーマ", "structural detail of a reinforced beam", domain.ThemeTechnical},
		{"フィクション", "a dragon guards the kingdom", domain.ThemeFictional},
		{"スペイン語の歴史テーマ", "la guerra de independencia de México", domain.ThemeHistorical},
		{"該当なしは general", "a quiet walk", domain.ThemeGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeTheme(tt.input)
			if got.Type != tt.want {
				t.Errorf("AnalyzeTheme(%q).Type = %s, want %s", tt.input, got.Type, tt.want)
			}
		})
	}

	t.Run("歴史テーマはサブ抽出が走るのだ", func(t *testing.T) {
		got := AnalyzeTheme("the war of independence in Mexico, 1810")
		if got.TimePeriod != "1810" {
			t.Errorf("TimePeriod 期待: 1810, 実際: %q", got.TimePeriod)
		}
		if got.Location != "mexico" {
			t.Errorf("Location 期待: mexico, 実際: %q", got.Location)
		}
		if len(got.KeyEvents) == 0 {
			t.Error("KeyEvents が空なのだ")
		}
	})

	t.Run("二度呼んでも同一の結果になる（冪等性）", func(t *testing.T) {
		a := AnalyzeTheme("explain the history of ancient Rome")
		b := AnalyzeTheme("explain the history of ancient Rome")
		if !reflect.DeepEqual(a, b) {
			t.Errorf("結果が揺れているのだ: %+v != %+v", a, b)
		}
	})
}

func TestAnalyzeVisualStyle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.StyleName
	}{
		{"スペイン語の sketch 指定", "dibujo estilo sketch con líneas", domain.StyleSketch},
		{"anime", "an anime adventure", domain.StyleAnime},
		{"cartoon", "a fun cartoon for kids", domain.StyleToons},
		{"realistic", "a realistic drama", domain.StyleRealistic},
		{"storyboard", "a storyboard for my short film", domain.StyleStoryboard},
		{"該当なしは generic", "a man and a dog", domain.StyleGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeVisualStyle(tt.input)
			if got.Style != tt.want {
				t.Errorf("AnalyzeVisualStyle(%q).Style = %s, want %s", tt.input, got.Style, tt.want)
			}
			if len(got.Characteristics) == 0 {
				t.Error("Characteristics は常に埋まるのだ")
			}
		})
	}

	t.Run("detailed キーワードで複雑度が上がる", func(t *testing.T) {
		got := AnalyzeVisualStyle("a highly detailed realistic portrait")
		if got.Complexity != domain.ComplexityDetailed {
			t.Errorf("期待: detailed, 実際: %s", got.Complexity)
		}
	})
}
