package domain

import "testing"

func TestStoryboardProject_PanelNumbersContiguous(t *testing.T) {
	makeProject := func(numbers ...int) *StoryboardProject {
		p := &StoryboardProject{}
		for _, n := range numbers {
			p.Panels = append(p.Panels, StoryboardPanel{Prompt: StoryboardPrompt{PanelNumber: n}})
		}
		return p
	}

	tests := []struct {
		name    string
		numbers []int
		want    bool
	}{
		{"1始まりの連番", []int{1, 2, 3, 4}, true},
		{"パネルなしでも成立", nil, true},
		{"0始まりはNG", []int{0, 1, 2}, false},
		{"欠番はNG", []int{1, 3, 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := makeProject(tt.numbers...).PanelNumbersContiguous(); got != tt.want {
				t.Errorf("PanelNumbersContiguous() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPanels_UniqueCharacterIDs(t *testing.T) {
	ps := Panels{
		{Prompt: StoryboardPrompt{CharacterIDs: []string{"char-2", "char-1"}}},
		{Prompt: StoryboardPrompt{CharacterIDs: []string{"char-1", ""}}},
		{Prompt: StoryboardPrompt{}},
	}

	got := ps.UniqueCharacterIDs()
	want := []string{"char-1", "char-2"}
	if len(got) != len(want) {
		t.Fatalf("件数が違うのだ: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ソート済みで返ってほしいのだ。期待: %v, 実際: %v", want, got)
		}
	}
}

func TestStoryboardProject_ReplacePrompts(t *testing.T) {
	p := &StoryboardProject{
		Panels: []StoryboardPanel{
			{Prompt: StoryboardPrompt{PanelNumber: 1, GeneratedPrompt: "old"}, GeneratedImageURL: "gs://x/1.png"},
		},
	}

	p.ReplacePrompts([]StoryboardPrompt{{PanelNumber: 1, GeneratedPrompt: "new"}})

	if p.Panels[0].Prompt.GeneratedPrompt != "new" {
		t.Error("プロンプトが書き換わっていないのだ")
	}
	if p.Panels[0].GeneratedImageURL != "gs://x/1.png" {
		t.Error("プロンプト差し替えで画像情報まで消えてしまったのだ")
	}
}
