package domain

// TimeOfDay はシーンの時間帯を表します。
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
	TimeUnknown   TimeOfDay = "unknown"
)

// Scene はストーリーボードの舞台となるロケーションの定義を保持します。
type Scene struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	TimeOfDay   TimeOfDay `json:"time_of_day"`
	Lighting    string    `json:"lighting,omitempty"`
	Mood        string    `json:"mood,omitempty"`
	Environment string    `json:"environment,omitempty"`
	Props       []string  `json:"props,omitempty"`
}

// ScenesMap はIDをキーとしたシーンの検索用マップです。
type ScenesMap map[string]Scene

// BuildScenesMap はスライス形式のシーンを検索用マップに変換します。
func BuildScenesMap(scenes []Scene) ScenesMap {
	m := make(ScenesMap, len(scenes))
	for _, s := range scenes {
		key := s.ID
		if key == "" {
			key = s.Name
		}
		m[key] = s
	}
	return m
}
