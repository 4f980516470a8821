package sequence

import (
	"fmt"
	"testing"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

func testCharacters() []domain.Character {
	return []domain.Character{
		{ID: "char-1", Name: "Man"},
		{ID: "char-2", Name: "Dog"},
	}
}

func testScenes() []domain.Scene {
	return []domain.Scene{{ID: "scene-1", Name: "Park", Location: "a city park", Mood: "peaceful"}}
}

func TestGeneratePanelSequence(t *testing.T) {
	t.Run("4パネルは establish→intro→action→resolution になる", func(t *testing.T) {
		prompts := GeneratePanelSequence("A walk. A chase. A rest.", testCharacters(), testScenes(), 4)
		if len(prompts) != 4 {
			t.Fatalf("期待: 4件, 実際: %d件", len(prompts))
		}

		wantTypes := []domain.PanelType{
			domain.PanelEstablishing,
			domain.PanelCharacterIntro,
			domain.PanelAction,
			domain.PanelResolution,
		}
		for i, want := range wantTypes {
			if prompts[i].PanelType != want {
				t.Errorf("panel %d: 期待 %s, 実際 %s", i+1, want, prompts[i].PanelType)
			}
			if prompts[i].PanelNumber != i+1 {
				t.Errorf("panel %d: 番号は %d であるべきなのだ", i+1, i+1)
			}
		}

		if len(prompts[0].CharacterIDs) != 0 {
			t.Error("導入パネルにキャラクターは登場しないのだ")
		}
		if len(prompts[1].CharacterIDs) != 1 || prompts[1].CharacterIDs[0] != "char-1" {
			t.Errorf("紹介パネルは主役だけを載せるのだ: %v", prompts[1].CharacterIDs)
		}
	})

	t.Run("count=1 は establishing のみ", func(t *testing.T) {
		prompts := GeneratePanelSequence("solo", testCharacters(), testScenes(), 1)
		if len(prompts) != 1 || prompts[0].PanelType != domain.PanelEstablishing {
			t.Fatalf("期待: establishing 1枚, 実際: %+v", prompts)
		}
	})

	t.Run("count=2 は action も resolution も持たない（意図した非対称）", func(t *testing.T) {
		prompts := GeneratePanelSequence("two beats", testCharacters(), testScenes(), 2)
		if len(prompts) != 2 {
			t.Fatalf("期待: 2件, 実際: %d件", len(prompts))
		}
		if prompts[1].PanelType != domain.PanelCharacterIntro {
			t.Errorf("2枚目は character_intro なのだ: %s", prompts[1].PanelType)
		}
	})

	t.Run("中間パネルには文単位のビートが先頭から順に載る", func(t *testing.T) {
		input := "First beat. Second beat. Third beat. Fourth beat."
		prompts := GeneratePanelSequence(input, testCharacters(), testScenes(), 6)
		// 中間スロットは 6-3=3
		actions := prompts[2:5]
		for _, p := range actions {
			if p.PanelType != domain.PanelAction {
				t.Fatalf("中間パネルが action ではないのだ: %s", p.PanelType)
			}
			if p.Action == "" {
				t.Error("ビートが割り当てられていないのだ")
			}
		}
		if actions[0].Action == actions[2].Action {
			t.Error("ビートが進行していないのだ（全スロット同一）")
		}
	})

	t.Run("シーン情報がない場合でもパネルは生成される", func(t *testing.T) {
		prompts := GeneratePanelSequence("empty", nil, nil, 3)
		if len(prompts) != 3 {
			t.Fatalf("期待: 3件, 実際: %d件", len(prompts))
		}
	})
}

func TestSplitStoryBeats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"ピリオド区切り", "One. Two. Three.", 3},
		{"混在区切り", "Run! Hide? Wait; go.", 4},
		{"区切りなしは全体が1ビート", "just one long breath", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitStoryBeats(tt.input); len(got) != tt.want {
				t.Errorf("SplitStoryBeats(%q) = %d beats, want %d", tt.input, len(got), tt.want)
			}
		})
	}
}

func TestBeatForSlot(t *testing.T) {
	beats := []string{"a", "b"}

	t.Run("ビートが少なければ比例写像で繰り返す", func(t *testing.T) {
		got := []string{
			beatForSlot(beats, 0, 4),
			beatForSlot(beats, 1, 4),
			beatForSlot(beats, 2, 4),
			beatForSlot(beats, 3, 4),
		}
		want := []string{"a", "a", "b", "b"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("slot %d: 期待 %q, 実際 %q", i, want[i], got[i])
			}
		}
	})

	t.Run("ビートが多ければ先頭からスロット数分だけ使われる", func(t *testing.T) {
		many := make([]string, 20)
		for i := range many {
			many[i] = fmt.Sprintf("beat-%02d", i)
		}
		got := []string{
			beatForSlot(many, 0, 2),
			beatForSlot(many, 1, 2),
		}
		want := []string{"beat-00", "beat-01"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("slot %d: 期待 %q, 実際 %q（先頭以外のビートに飛んではいけないのだ）", i, want[i], got[i])
			}
		}
	})
}
