package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

func TestParseUserInput(t *testing.T) {
	t.Run("空入力は失敗として報告されるのだ", func(t *testing.T) {
		result := ParseUserInput("   ")
		if result.Success {
			t.Fatal("Success = true, want false")
		}
		if len(result.Errors) == 0 {
			t.Error("expected error messages")
		}
		if result.Project != nil {
			t.Error("Project should be nil on failure")
		}
	})

	t.Run("通常の入力から完全なプロジェクトが組み上がるのだ", func(t *testing.T) {
		result := ParseUserInput("a story about a guy walking his dog in the park, anime style")
		if !result.Success {
			t.Fatalf("Success = false, errors = %v", result.Errors)
		}
		project := result.Project

		if project.ID == "" || project.Title == "" || project.Description == "" {
			t.Errorf("incomplete project identity: %+v", project)
		}
		if len(project.Characters) != 2 {
			t.Errorf("Characters = %d, want 2 (guy + dog)", len(project.Characters))
		}
		if len(project.Scenes) == 0 {
			t.Error("expected at least one scene")
		}
		if len(project.Panels) != 4 {
			t.Errorf("Panels = %d, want default 4", len(project.Panels))
		}
		if !project.PanelNumbersContiguous() {
			t.Error("panel numbers are not contiguous from 1")
		}
		if project.Style != domain.StyleAnime {
			t.Errorf("Style = %q, want anime", project.Style)
		}
		for i, panel := range project.Panels {
			if strings.TrimSpace(panel.Prompt.GeneratedPrompt) == "" {
				t.Errorf("panel %d has an empty generated prompt", i+1)
			}
		}
	})

	t.Run("パネル数指定が骨格に反映されるのだ", func(t *testing.T) {
		result := ParseUserInput("a chase through the city (panels: 6)")
		if !result.Success {
			t.Fatalf("Success = false, errors = %v", result.Errors)
		}
		if len(result.Project.Panels) != 6 {
			t.Errorf("Panels = %d, want 6", len(result.Project.Panels))
		}
	})

	t.Run("意味の取れない入力でもフォールバックで完結するのだ", func(t *testing.T) {
		result := ParseUserInput("xyzzy plugh")
		if !result.Success {
			t.Fatalf("Success = false, errors = %v", result.Errors)
		}
		project := result.Project
		if len(project.Characters) != 1 {
			t.Errorf("Characters = %d, want 1 fallback character", len(project.Characters))
		}
		if len(project.Scenes) != 1 {
			t.Errorf("Scenes = %d, want 1 fallback scene", len(project.Scenes))
		}
		for i, panel := range project.Panels {
			if panel.Prompt.GeneratedPrompt == "" {
				t.Errorf("panel %d has an empty prompt", i+1)
			}
		}
	})

	t.Run("同じ入力からは同じ構造が決定論的に得られるのだ", func(t *testing.T) {
		input := "a woman and a robot explore a forest at night, 5 panels"
		first := ParseUserInput(input)
		second := ParseUserInput(input)
		if !first.Success || !second.Success {
			t.Fatal("both parses should succeed")
		}

		// タイムスタンプ以外は完全一致するはず
		a, b := first.Project, second.Project
		a.CreatedAt, b.CreatedAt = b.CreatedAt, a.CreatedAt
		for i := range a.Panels {
			a.Panels[i].CreatedAt = b.Panels[i].CreatedAt
			a.Panels[i].UpdatedAt = b.Panels[i].UpdatedAt
		}
		if !reflect.DeepEqual(a, b) {
			t.Error("two parses of the same input produced different projects")
		}
		if a.ID != b.ID {
			t.Errorf("project IDs differ: %q vs %q", a.ID, b.ID)
		}
	})
}

func TestParseArchitecturalInput(t *testing.T) {
	t.Run("未知の種別は失敗なのだ", func(t *testing.T) {
		result := ParseArchitecturalInput("a concrete beam detail", "bogus")
		if result.Success {
			t.Fatal("Success = true, want false for unknown kind")
		}
	})

	t.Run("梁ディテールの典型入力なのだ", func(t *testing.T) {
		input := "detalle de viga de concreto reforzado, escala 1:10, norma ACI, 3 paneles"
		result := ParseArchitecturalInput(input, domain.KindDetalles)
		if !result.Success {
			t.Fatalf("Success = false, errors = %v", result.Errors)
		}
		project := result.Project

		if project.ProjectType != domain.ProjectArchitectural {
			t.Errorf("ProjectType = %q, want architectural", project.ProjectType)
		}
		if project.Architectural == nil {
			t.Fatal("Architectural metadata is nil")
		}
		meta := project.Architectural
		if meta.Kind != domain.KindDetalles {
			t.Errorf("Kind = %q, want detalles", meta.Kind)
		}
		if meta.Scale != "1:10" {
			t.Errorf("Scale = %q, want 1:10", meta.Scale)
		}
		if len(meta.Standards) != 1 || meta.Standards[0] != "ACI" {
			t.Errorf("Standards = %v, want [ACI]", meta.Standards)
		}
		if len(project.Panels) != 3 {
			t.Fatalf("Panels = %d, want 3", len(project.Panels))
		}
		if project.Panels[0].Prompt.DetailLevel != domain.DetailOverview {
			t.Errorf("first detail level = %q, want overview", project.Panels[0].Prompt.DetailLevel)
		}
		for i, panel := range project.Panels {
			prompt := panel.Prompt.GeneratedPrompt
			if prompt == "" {
				t.Fatalf("panel %d has an empty prompt", i+1)
			}
			if !strings.Contains(prompt, "1:10") {
				t.Errorf("panel %d prompt does not state the scale", i+1)
			}
		}
	})

	t.Run("planosは5枚を超えるとlegendを繰り返すのだ", func(t *testing.T) {
		result := ParseArchitecturalInput("conjunto de planos de una casa, 7 paneles", domain.KindPlanos)
		if !result.Success {
			t.Fatalf("Success = false, errors = %v", result.Errors)
		}
		panels := result.Project.Panels
		if len(panels) != 7 {
			t.Fatalf("Panels = %d, want 7", len(panels))
		}
		for _, panel := range panels[5:] {
			if panel.Prompt.DetailLevel != domain.DetailLegend {
				t.Errorf("panel %d detail = %q, want legend", panel.Prompt.PanelNumber, panel.Prompt.DetailLevel)
			}
		}
	})
}
