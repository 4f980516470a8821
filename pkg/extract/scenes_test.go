package extract

import (
	"testing"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

func TestExtractScenes(t *testing.T) {
	t.Run("park が正規化されたロケーションになる", func(t *testing.T) {
		scenes := ExtractScenes("A guy with a dog walking in the park")
		if len(scenes) != 1 {
			t.Fatalf("期待: 1件, 実際: %d件", len(scenes))
		}
		if scenes[0].Name != "Park" {
			t.Errorf("期待: Park, 実際: %s", scenes[0].Name)
		}
		if scenes[0].Location != "a city park" {
			t.Errorf("正規化ロケーションが違うのだ: %s", scenes[0].Location)
		}
	})

	t.Run("一致ゼロなら入力原文が location と environment に入る", func(t *testing.T) {
		scenes := ExtractScenes("xyzzy plugh")
		if len(scenes) != 1 {
			t.Fatalf("期待: 1件, 実際: %d件", len(scenes))
		}
		if scenes[0].Location != "xyzzy plugh" || scenes[0].Environment != "xyzzy plugh" {
			t.Errorf("フォールバックシーンが原文を保持していないのだ: %+v", scenes[0])
		}
	})

	t.Run("時間帯と雰囲気がシーンに伝搬する", func(t *testing.T) {
		scenes := ExtractScenes("a peaceful walk on the beach at sunset")
		if scenes[0].TimeOfDay != domain.TimeEvening {
			t.Errorf("期待: evening, 実際: %s", scenes[0].TimeOfDay)
		}
		if scenes[0].Mood != "peaceful" {
			t.Errorf("期待: peaceful, 実際: %s", scenes[0].Mood)
		}
	})
}

func TestDetectPanelCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"素の指定", "a story in 6 panels", 6},
		{"ラベル形式", "A guy with a dog walking in the park (panels: 4)", 4},
		{"スペイン語", "una historia de 3 paneles", 3},
		{"上限クランプ", "an epic told in 99 panels", 12},
		{"指定なしは既定値4", "a quiet morning", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPanelCount(tt.input); got != tt.want {
				t.Errorf("DetectPanelCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectAttributes(t *testing.T) {
	t.Run("mood の既定値は neutral", func(t *testing.T) {
		if got := DetectMood("nothing special"); got != "neutral" {
			t.Errorf("期待: neutral, 実際: %s", got)
		}
	})
	t.Run("genre の既定値は general", func(t *testing.T) {
		if got := DetectGenre("nothing special"); got != "general" {
			t.Errorf("期待: general, 実際: %s", got)
		}
	})
	t.Run("audience: architects が検出される", func(t *testing.T) {
		if got := DetectAudience("a detail for architects"); got != "architects" {
			t.Errorf("期待: architects, 実際: %s", got)
		}
	})
	t.Run("time of day の既定値は unknown", func(t *testing.T) {
		if got := DetectTimeOfDay("nothing special"); got != domain.TimeUnknown {
			t.Errorf("期待: unknown, 実際: %s", got)
		}
	})
}
