package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// scenePattern はロケーションキーワードと正規化されたシーン定義の対です。
type scenePattern struct {
	re          *regexp.Regexp
	name        string
	location    string
	environment string
	props       []string
}

// scenePatterns は認識できるロケーションの辞書です。先頭から順に評価します。
var scenePatterns = []scenePattern{
	{
		re:          regexp.MustCompile(`\b(?:park|parque)\b`),
		name:        "Park",
		location:    "a city park",
		environment: "green lawns, scattered trees, walking paths",
		props:       []string{"bench", "lamppost"},
	},
	{
		re:          regexp.MustCompile(`\b(?:home|house|casa|hogar)\b`),
		name:        "Home",
		location:    "a cozy home interior",
		environment: "warm domestic light, furniture, personal belongings",
	},
	{
		re:          regexp.MustCompile(`\b(?:street|calle|avenida)\b`),
		name:        "Street",
		location:    "a busy city street",
		environment: "storefronts, passing cars, pedestrians",
	},
	{
		re:          regexp.MustCompile(`\b(?:office|oficina)\b`),
		name:        "Office",
		location:    "a modern office",
		environment: "desks, monitors, glass partitions",
	},
	{
		re:          regexp.MustCompile(`\b(?:beach|playa)\b`),
		name:        "Beach",
		location:    "a sandy beach",
		environment: "rolling waves, open sky, distant horizon",
	},
	{
		re:          regexp.MustCompile(`\b(?:forest|woods|bosque)\b`),
		name:        "Forest",
		location:    "a dense forest",
		environment: "tall trees, filtered light, undergrowth",
	},
	{
		re:          regexp.MustCompile(`\b(?:school|escuela|colegio)\b`),
		name:        "School",
		location:    "a school campus",
		environment: "classrooms, corridors, notice boards",
	},
	{
		re:          regexp.MustCompile(`\b(?:construction site|obra|building site)\b`),
		name:        "Construction Site",
		location:    "an active construction site",
		environment: "scaffolding, exposed structure, safety barriers",
		props:       []string{"crane", "formwork"},
	},
	{
		re:          regexp.MustCompile(`\b(?:studio|estudio|taller)\b`),
		name:        "Studio",
		location:    "an artist studio",
		environment: "work tables, sketches pinned to walls, tools",
	},
	{
		re:          regexp.MustCompile(`\b(?:city|ciudad|downtown)\b`),
		name:        "City",
		location:    "a sprawling cityscape",
		environment: "skyline, rooftops, dense blocks",
	},
}

// ExtractScenes は入力テキストからシーン一覧を抽出します。
// 一致が1件もない場合は、入力原文を location と environment の両方に据えた
// フォールバックシーンを1つ合成します。
func ExtractScenes(input string) []domain.Scene {
	lowered := strings.ToLower(input)
	timeOfDay := DetectTimeOfDay(input)
	mood := DetectMood(input)

	var scenes []domain.Scene
	for _, p := range scenePatterns {
		if !p.re.MatchString(lowered) {
			continue
		}
		scenes = append(scenes, domain.Scene{
			ID:          fmt.Sprintf("scene-%d", len(scenes)+1),
			Name:        p.name,
			Location:    p.location,
			TimeOfDay:   timeOfDay,
			Mood:        mood,
			Environment: p.environment,
			Props:       p.props,
		})
	}

	if len(scenes) == 0 {
		raw := strings.TrimSpace(input)
		scenes = append(scenes, domain.Scene{
			ID:          "scene-1",
			Name:        "Scene",
			Location:    raw,
			TimeOfDay:   timeOfDay,
			Mood:        mood,
			Environment: raw,
		})
	}

	return scenes
}
