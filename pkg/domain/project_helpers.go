package domain

import "sort"

// Panels はパネルスライスに対する補助操作をまとめた型です。
type Panels []StoryboardPanel

// UniqueCharacterIDs はパネル群から重複しないキャラクターIDを抽出します。
func (ps Panels) UniqueCharacterIDs() []string {
	set := make(map[string]struct{})
	for _, panel := range ps {
		for _, id := range panel.Prompt.CharacterIDs {
			if id != "" {
				set[id] = struct{}{}
			}
		}
	}

	uniqueIDs := make([]string, 0, len(set))
	for id := range set {
		uniqueIDs = append(uniqueIDs, id)
	}
	sort.Strings(uniqueIDs)

	return uniqueIDs
}
