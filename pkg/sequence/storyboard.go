package sequence

import (
	"fmt"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// GeneratePanelSequence は抽出済みのキャラクター・シーンと目標パネル数から、
// 固定のナラティブアーク（導入 → 人物紹介 → アクション×(N−3) → 結末）に沿った
// パネル骨格の列を生成します。GeneratedPrompt は空のままで、後段の合成器が
// 埋めます。
//
// count=1 は establishing のみ、count=2 は establishing+intro のみになります。
// これはスロット数の算術（count−2−1 の中間スロット）から導かれる意図的な
// 非対称で、特別扱いはしません。
func GeneratePanelSequence(input string, characters []domain.Character, scenes []domain.Scene, count int) []domain.StoryboardPrompt {
	if count < 1 {
		count = 1
	}

	scene := domain.Scene{}
	if len(scenes) > 0 {
		scene = scenes[0]
	}
	mood := scene.Mood
	beats := SplitStoryBeats(input)

	prompts := make([]domain.StoryboardPrompt, 0, count)

	// パネル1: 導入。キャラクターなしのシーン描写のみ。
	prompts = append(prompts, domain.StoryboardPrompt{
		PanelNumber:      1,
		PanelType:        domain.PanelEstablishing,
		Composition:      domain.CompositionWide,
		SceneDescription: scene.Location,
		SceneID:          scene.ID,
		Lighting:         scene.Lighting,
		Mood:             mood,
		Camera:           "static wide shot",
	})

	// パネル2: 主役の紹介。
	if count >= 2 {
		var introIDs []string
		action := "the protagonist enters the scene"
		if len(characters) > 0 {
			introIDs = []string{characters[0].ID}
			action = fmt.Sprintf("%s appears for the first time", characters[0].Name)
		}
		prompts = append(prompts, domain.StoryboardPrompt{
			PanelNumber:      2,
			PanelType:        domain.PanelCharacterIntro,
			Composition:      domain.CompositionMedium,
			SceneDescription: scene.Location,
			Action:           action,
			CharacterIDs:     introIDs,
			SceneID:          scene.ID,
			Mood:             mood,
			Camera:           "eye-level medium shot",
		})
	}

	// 中間パネル: アクション。スロット数は count−3（下限0）。
	middleSlots := count - 3
	if middleSlots < 0 {
		middleSlots = 0
	}
	allIDs := characterIDs(characters)
	for slot := 0; slot < middleSlots; slot++ {
		prompts = append(prompts, domain.StoryboardPrompt{
			PanelNumber:      len(prompts) + 1,
			PanelType:        domain.PanelAction,
			Composition:      domain.CompositionCloseUp,
			SceneDescription: scene.Location,
			Action:           beatForSlot(beats, slot, middleSlots),
			CharacterIDs:     allIDs,
			SceneID:          scene.ID,
			Mood:             mood,
			Camera:           "dynamic close-up",
		})
	}

	// 最終パネル: 結末。
	if count >= 3 {
		prompts = append(prompts, domain.StoryboardPrompt{
			PanelNumber:      len(prompts) + 1,
			PanelType:        domain.PanelResolution,
			Composition:      domain.CompositionMedium,
			SceneDescription: scene.Location,
			Action:           "the story comes to a close",
			CharacterIDs:     allIDs,
			SceneID:          scene.ID,
			Mood:             mood,
			Camera:           "settling medium shot",
		})
	}

	return prompts
}

func characterIDs(characters []domain.Character) []string {
	ids := make([]string, 0, len(characters))
	for _, c := range characters {
		ids = append(ids, c.ID)
	}
	return ids
}
