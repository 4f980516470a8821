package publisher

import (
	"strings"
	"testing"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

func sampleProject() *domain.StoryboardProject {
	return &domain.StoryboardProject{
		ID:    "sb-test",
		Title: "Luna in the Park",
		Characters: []domain.Character{
			{ID: "char-1", Name: "Luna", Role: domain.RoleProtagonist},
		},
		Scenes: []domain.Scene{
			{ID: "scene-1", Name: "Park", Location: "a city park"},
		},
		Panels: []domain.StoryboardPanel{
			{Prompt: domain.StoryboardPrompt{
				PanelNumber:     1,
				PanelType:       domain.PanelEstablishing,
				Composition:     domain.CompositionWide,
				SceneID:         "scene-1",
				Action:          "the park stretches out",
				GeneratedPrompt: "anime style, wide shot, a city park",
			}},
			{Prompt: domain.StoryboardPrompt{
				PanelNumber:     2,
				PanelType:       domain.PanelCharacterIntro,
				Composition:     domain.CompositionMedium,
				CharacterIDs:    []string{"char-1"},
				SceneID:         "scene-1",
				Action:          "Luna walks along the path",
				GeneratedPrompt: "anime style, medium shot, Luna walking",
			}},
		},
	}
}

func TestBuildStoryboardMarkdown(t *testing.T) {
	t.Run("タイトルとパネルヘッダーが出力されるのだ", func(t *testing.T) {
		project := sampleProject()
		md := BuildStoryboardMarkdown(project, []string{"images/panel_1.png", "images/panel_2.png"})

		if !strings.HasPrefix(md, "# Luna in the Park\n") {
			t.Errorf("タイトル行が先頭にないのだ: %q", md[:min(len(md), 40)])
		}
		for _, want := range []string{
			"## Panel: images/panel_1.png",
			"## Panel: images/panel_2.png",
			"- layout: standard",
			"- type: establishing",
			"- composition: medium",
			"- characters: Luna",
			"- text: Luna walks along the path",
		} {
			if !strings.Contains(md, want) {
				t.Errorf("Markdown に %q が含まれていないのだ", want)
			}
		}
	})

	t.Run("画像が足りないパネルはプレースホルダーになるのだ", func(t *testing.T) {
		project := sampleProject()
		md := BuildStoryboardMarkdown(project, []string{"images/panel_1.png"})

		if !strings.Contains(md, "## Panel: "+placeholder) {
			t.Errorf("2枚目のパネルがプレースホルダーになっていないのだ:\n%s", md)
		}
	})

	t.Run("建築モードでは図面設定とビュー情報が出力されるのだ", func(t *testing.T) {
		project := &domain.StoryboardProject{
			ID:          "arch-test",
			Title:       "Reinforced Concrete Beam Detail",
			ProjectType: domain.ProjectArchitectural,
			Architectural: &domain.ArchitecturalMetadata{
				Kind:       domain.KindDetalles,
				Scale:      "1:10",
				UnitSystem: domain.UnitMetric,
				Standards:  []string{"ACI"},
			},
			Panels: []domain.StoryboardPanel{
				{Prompt: domain.StoryboardPrompt{
					PanelNumber:     1,
					PanelType:       domain.PanelEstablishing,
					ViewType:        domain.ViewSection,
					DetailLevel:     domain.DetailOverview,
					GeneratedPrompt: "technical drawing, section view",
				}},
			},
		}
		md := BuildStoryboardMarkdown(project, nil)

		for _, want := range []string{
			"- kind: detalles",
			"- scale: 1:10",
			"- units: metric",
			"- standards: ACI",
			"- view: section",
			"- detail: overview",
		} {
			if !strings.Contains(md, want) {
				t.Errorf("建築 Markdown に %q が含まれていないのだ", want)
			}
		}
		if strings.Contains(md, "- composition:") {
			t.Error("建築パネルに composition 行が出てはいけないのだ")
		}
	})

	t.Run("未知のキャラクターIDは表示から除外されるのだ", func(t *testing.T) {
		project := sampleProject()
		project.Panels[1].Prompt.CharacterIDs = []string{"char-1", "char-unknown"}
		md := BuildStoryboardMarkdown(project, nil)

		if !strings.Contains(md, "- characters: Luna\n") {
			t.Errorf("既知のキャラクターだけが表示されるべきなのだ:\n%s", md)
		}
	})
}
