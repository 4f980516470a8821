package extract

import (
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// DefaultScale は縮尺の指定がない場合の既定値です。
const DefaultScale = "1:20"

var imperialKeywords = []string{"imperial", "feet", "foot", "inch", "inches", " ft", " in.", "pies", "pulgadas"}

// DetectUnitSystem は入力テキストから単位系を判定します。
// インペリアル系のキーワードが1つでも含まれれば imperial、それ以外は metric です。
func DetectUnitSystem(input string) domain.UnitSystem {
	lowered := strings.ToLower(input)
	for _, kw := range imperialKeywords {
		if strings.Contains(lowered, kw) {
			return domain.UnitImperial
		}
	}
	return domain.UnitMetric
}

// DetectScale は "1:N" 形式の縮尺表記を検出します。既定値は "1:20" です。
func DetectScale(input string) string {
	if m := ScaleRegex.FindStringSubmatch(input); m != nil {
		return "1:" + m[1]
	}
	return DefaultScale
}

// DetectStandards は設計基準のコード名を重複なしで抽出します。
func DetectStandards(input string) []string {
	matches := StandardsRegex.FindAllString(input, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	standards := make([]string, 0, len(matches))
	for _, m := range matches {
		normalized := strings.ToUpper(strings.Join(strings.Fields(m), " "))
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		standards = append(standards, normalized)
	}
	return standards
}

// componentEntries はキーワードと正規化された部材名の対応表です。先勝ちではなく
// 一致したものをすべて収集します（1枚の詳細図に複数部材が載るため）。
var componentEntries = []keywordEntry{
	{[]string{"beam", "viga"}, "reinforced concrete beam"},
	{[]string{"column", "columna", "pilar"}, "structural column"},
	{[]string{"slab", "losa"}, "floor slab"},
	{[]string{"footing", "foundation", "zapata", "cimentación", "cimentacion"}, "foundation footing"},
	{[]string{"wall", "muro"}, "load-bearing wall"},
	{[]string{"stair", "escalera"}, "staircase"},
	{[]string{"roof", "cubierta", "techo"}, "roof structure"},
	{[]string{"joint", "junta", "connection", "conexión", "conexion"}, "structural joint"},
	{[]string{"truss", "cercha"}, "truss"},
}

// ExtractComponents は入力テキストから構造部材を正規化された名称で抽出します。
func ExtractComponents(input string) []string {
	return collectMatches(input, componentEntries)
}

var materialEntries = []keywordEntry{
	{[]string{"reinforced concrete", "hormigón armado", "concreto reforzado"}, "reinforced concrete"},
	{[]string{"concrete", "hormigón", "hormigon", "concreto"}, "concrete"},
	{[]string{"steel", "acero"}, "steel"},
	{[]string{"wood", "timber", "madera"}, "timber"},
	{[]string{"glass", "vidrio"}, "glass"},
	{[]string{"brick", "masonry", "ladrillo", "mampostería", "mamposteria"}, "brick masonry"},
	{[]string{"stone", "piedra"}, "stone"},
}

// ExtractMaterials は入力テキストから建材を正規化された名称で抽出します。
func ExtractMaterials(input string) []string {
	return collectMatches(input, materialEntries)
}

func collectMatches(input string, entries []keywordEntry) []string {
	lowered := strings.ToLower(input)

	var out []string
	seen := make(map[string]struct{})
	for _, e := range entries {
		for _, kw := range e.keywords {
			if !strings.Contains(lowered, kw) {
				continue
			}
			if _, ok := seen[e.value]; !ok {
				seen[e.value] = struct{}{}
				out = append(out, e.value)
			}
			break
		}
	}
	return out
}

// ExtractDimensions は寸法表記を "<値> <単位>" または "<値> × <値> <単位>" に
// 正規化して抽出します。小数点のカンマ表記はドットに正規化します。
// ペア表記が優先され、その範囲に重なる単独寸法は二重計上しません。
func ExtractDimensions(input string) []string {
	var dims []string

	pairSpans := DimensionPairRegex.FindAllStringSubmatchIndex(input, -1)
	for _, span := range pairSpans {
		a := normalizeDecimal(input[span[2]:span[3]])
		b := normalizeDecimal(input[span[4]:span[5]])
		unit := input[span[6]:span[7]]
		dims = append(dims, a+" × "+b+" "+unit)
	}

	singleSpans := DimensionSingleRegex.FindAllStringSubmatchIndex(input, -1)
	for _, span := range singleSpans {
		if overlapsAny(span[0], span[1], pairSpans) {
			continue
		}
		value := normalizeDecimal(input[span[2]:span[3]])
		unit := input[span[4]:span[5]]
		dims = append(dims, value+" "+unit)
	}

	return dims
}

// ExtractReinforcement は "<径>@<間隔>" 形式の配筋表記を抽出します。
func ExtractReinforcement(input string) []string {
	matches := ReinforcementRegex.FindAllStringSubmatch(input, -1)
	if len(matches) == 0 {
		return nil
	}

	bars := make([]string, 0, len(matches))
	for _, m := range matches {
		size := strings.Join(strings.Fields(m[1]), "")
		bars = append(bars, size+"@"+m[2])
	}
	return bars
}

func normalizeDecimal(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

func overlapsAny(start, end int, spans [][]int) bool {
	for _, span := range spans {
		if start < span[1] && end > span[0] {
			return true
		}
	}
	return false
}
