package sequence

import (
	"regexp"
	"strings"
)

// sentenceTerminatorRegex はストーリービート分割に使う文区切りです。
var sentenceTerminatorRegex = regexp.MustCompile(`[.!?;]+`)

// SplitStoryBeats は入力テキストを文単位のストーリービートに分割します。
// 空のビートは除去されます。1つも残らなければ入力全体を唯一のビートとします。
func SplitStoryBeats(input string) []string {
	parts := sentenceTerminatorRegex.Split(input, -1)

	beats := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			beats = append(beats, s)
		}
	}

	if len(beats) == 0 {
		beats = append(beats, strings.TrimSpace(input))
	}
	return beats
}

// beatForSlot はスロット位置に対応するビートを選びます。
// ビートがスロット以上あるときは先頭から順にスロット数分だけ使い、
// 少なければ比例インデックス写像で繰り返します。
func beatForSlot(beats []string, slot, totalSlots int) string {
	if len(beats) == 0 || totalSlots <= 0 {
		return ""
	}
	if len(beats) >= totalSlots {
		if slot >= len(beats) {
			slot = len(beats) - 1
		}
		return beats[slot]
	}
	idx := slot * len(beats) / totalSlots
	if idx >= len(beats) {
		idx = len(beats) - 1
	}
	return beats[idx]
}
