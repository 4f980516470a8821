package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

const (
	// BaseCADTags は建築パネル全体に共通する先頭タグです。
	BaseCADTags = "technical architectural drawing, CAD style, precise black linework on white background, orthographic projection"

	// ArchExclusionTags は建築図面から排除する要素の固定タグです。
	ArchExclusionTags = "no people, no characters, no decorative elements, no artistic shading, no color fills"
)

// drawingStyles は種別ごとの描画スタイル指示です。
var drawingStyles = map[domain.ArchitecturalKind]string{
	domain.KindDetalles:   "construction detail drawing with hatching conventions and leader lines",
	domain.KindPlanos:     "complete drawing sheet layout with title block conventions",
	domain.KindPrototipos: "conceptual design presentation drawing, diagrammatic clarity",
}

// viewDescriptions は投影方法ごとの記述です。
var viewDescriptions = map[domain.ViewType]string{
	domain.ViewPlan:        "top-down plan view",
	domain.ViewSection:     "vertical section cut showing internal construction",
	domain.ViewElevation:   "frontal elevation view",
	domain.ViewDetail:      "enlarged detail view",
	domain.ViewAxonometric: "axonometric projection",
	domain.ViewPerspective: "one-point perspective view",
	domain.ViewDiagram:     "schematic diagram",
}

// detailFocus はディテールレベルごとの焦点フレーズです。
var detailFocus = map[domain.DetailLevel]string{
	domain.DetailOverview:      "overall assembly overview with main members labeled",
	domain.DetailReinforcement: "reinforcement layout with bar marks and spacing callouts",
	domain.DetailConnection:    "connection detail with fasteners and bearing surfaces",
	domain.DetailNotes:         "general notes block and specification references",
	domain.DetailExploded:      "exploded view separating each component",
	domain.DetailSite:          "site plan with boundaries and access",
	domain.DetailPlan:          "floor plan with walls, openings and room labels",
	domain.DetailSection:       "building section with floor levels",
	domain.DetailElevation:     "facade composition with openings",
	domain.DetailLegend:        "legend sheet with symbols and abbreviations",
	domain.DetailMassing:       "massing study of the overall volume",
	domain.DetailProgram:       "program distribution diagram",
	domain.DetailFacade:        "facade treatment study",
	domain.DetailStructure:     "structural system diagram",
	domain.DetailCirculation:   "circulation flow diagram",
	domain.DetailDiagram:       "concept diagram",
}

// GenerateArchitecturalPanelPrompts は建築パネル骨格の GeneratedPrompt を
// 合成して埋めます。ストーリーボード側と同じ決定論的な連結パイプラインで、
// 任意フィールドがすべて空でも固定タグにより非空の出力を保証します。
func GenerateArchitecturalPanelPrompts(prompts []domain.StoryboardPrompt, meta domain.ArchitecturalMetadata, kind domain.ArchitecturalKind) []domain.StoryboardPrompt {
	out := make([]domain.StoryboardPrompt, len(prompts))
	for i, p := range prompts {
		p.GeneratedPrompt = buildArchitecturalPrompt(p, meta, kind)
		out[i] = p
	}
	return out
}

func buildArchitecturalPrompt(p domain.StoryboardPrompt, meta domain.ArchitecturalMetadata, kind domain.ArchitecturalKind) string {
	parts := make([]string, 0, 14)

	// 1. CAD基本タグと種別の描画スタイル
	parts = append(parts, BaseCADTags)
	if style, ok := drawingStyles[kind]; ok {
		parts = append(parts, style)
	}

	// 2. 投影方法とディテールレベルの焦点
	if desc, ok := viewDescriptions[p.ViewType]; ok {
		parts = append(parts, desc)
	}
	if focus, ok := detailFocus[p.DetailLevel]; ok {
		parts = append(parts, focus)
	}

	// 3. 縮尺・単位系・基準
	if p.Scale != "" {
		parts = append(parts, "scale "+p.Scale)
	}
	if p.UnitSystem != "" {
		parts = append(parts, string(p.UnitSystem)+" units")
	}
	if len(p.Standards) > 0 {
		parts = append(parts, "per "+strings.Join(p.Standards, ", "))
	}

	// 4. 部材・建材・寸法・注記
	if len(p.Components) > 0 {
		parts = append(parts, "showing "+strings.Join(p.Components, ", "))
	}
	if len(p.Materials) > 0 {
		parts = append(parts, "materials: "+strings.Join(p.Materials, ", "))
	}
	if len(p.Dimensions) > 0 {
		parts = append(parts, "dimensions "+strings.Join(p.Dimensions, ", "))
	}
	if len(p.Annotations) > 0 {
		parts = append(parts, "annotated: "+strings.Join(p.Annotations, "; "))
	}

	// 5. 種別固有の追加指示
	switch kind {
	case domain.KindPlanos:
		if meta.Levels > 0 {
			parts = append(parts, fmt.Sprintf("%d levels with structural grid lines", meta.Levels))
		} else {
			parts = append(parts, "structural grid lines and level markers")
		}
	case domain.KindPrototipos:
		if meta.BuildingType != "" {
			parts = append(parts, meta.BuildingType+" building")
		}
		if meta.Floors > 0 {
			parts = append(parts, fmt.Sprintf("%d floors", meta.Floors))
		}
		if len(meta.Program) > 0 {
			parts = append(parts, "program: "+strings.Join(meta.Program, ", "))
		}
	}

	// 6. 固定の排除タグ
	parts = append(parts, ArchExclusionTags)

	return joinClean(parts)
}
