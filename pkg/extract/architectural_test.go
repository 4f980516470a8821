package extract

import (
	"reflect"
	"testing"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

func TestDetectUnitSystem(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.UnitSystem
	}{
		{"既定はメートル法", "a concrete beam 250 mm deep", domain.UnitMetric},
		{"feet でインペリアル", "a wall 12 feet high", domain.UnitImperial},
		{"スペイン語 pulgadas でインペリアル", "una losa de 8 pulgadas", domain.UnitImperial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectUnitSystem(tt.input); got != tt.want {
				t.Errorf("DetectUnitSystem(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectScale(t *testing.T) {
	t.Run("1:N 表記を検出する", func(t *testing.T) {
		if got := DetectScale("beam detail, scale 1:20, 3 panels"); got != "1:20" {
			t.Errorf("期待: 1:20, 実際: %s", got)
		}
	})
	t.Run("指定なしは既定の 1:20", func(t *testing.T) {
		if got := DetectScale("a simple detail"); got != DefaultScale {
			t.Errorf("期待: %s, 実際: %s", DefaultScale, got)
		}
	})
}

func TestDetectStandards(t *testing.T) {
	got := DetectStandards("designed per ACI 318 and Eurocode 2, checked against ACI 318")
	want := []string{"ACI 318", "EUROCODE 2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("期待: %v, 実際: %v", want, got)
	}
}

func TestExtractComponentsAndMaterials(t *testing.T) {
	input := "Show a reinforced concrete beam detail with a steel connection to the column"

	components := ExtractComponents(input)
	if len(components) == 0 || components[0] != "reinforced concrete beam" {
		t.Errorf("beam が正規化されて先頭に来るはずなのだ: %v", components)
	}

	materials := ExtractMaterials(input)
	wantMaterials := []string{"reinforced concrete", "steel"}
	if !reflect.DeepEqual(materials, wantMaterials) {
		t.Errorf("期待: %v, 実際: %v", wantMaterials, materials)
	}
}

func TestExtractDimensions(t *testing.T) {
	t.Run("ペア寸法はカンマ小数も正規化される", func(t *testing.T) {
		got := ExtractDimensions("sección 0,25 x 0,40 m")
		want := []string{"0.25 × 0.40 m"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("期待: %v, 実際: %v", want, got)
		}
	})

	t.Run("ペアと単独が混在しても二重計上しない", func(t *testing.T) {
		got := ExtractDimensions("beam 30x60 cm with 250 mm cover")
		want := []string{"30 × 60 cm", "250 mm"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("期待: %v, 実際: %v", want, got)
		}
	})
}

func TestExtractReinforcement(t *testing.T) {
	got := ExtractReinforcement("stirrups #4@200, longitudinal 12mm@150")
	want := []string{"#4@200", "12mm@150"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("期待: %v, 実際: %v", want, got)
	}
}
