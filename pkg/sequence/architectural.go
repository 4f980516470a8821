package sequence

import (
	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// detailSequences はプロジェクト種別ごとの固定ディテールレベル進行です。
// 要求パネル数が表より多い場合は最後のレベルを繰り返します。
var detailSequences = map[domain.ArchitecturalKind][]domain.DetailLevel{
	domain.KindDetalles: {
		domain.DetailOverview,
		domain.DetailReinforcement,
		domain.DetailConnection,
		domain.DetailNotes,
		domain.DetailExploded,
	},
	domain.KindPlanos: {
		domain.DetailSite,
		domain.DetailPlan,
		domain.DetailSection,
		domain.DetailElevation,
		domain.DetailLegend,
	},
	domain.KindPrototipos: {
		domain.DetailMassing,
		domain.DetailProgram,
		domain.DetailFacade,
		domain.DetailStructure,
		domain.DetailCirculation,
		domain.DetailDiagram,
	},
}

// viewTypeForDetail はディテールレベルから図面の投影方法を引く対応表です。
// パネルごとのビューは自由選択ではなく、この表から導出されます。
var viewTypeForDetail = map[domain.DetailLevel]domain.ViewType{
	domain.DetailOverview:      domain.ViewDetail,
	domain.DetailReinforcement: domain.ViewSection,
	domain.DetailConnection:    domain.ViewDetail,
	domain.DetailNotes:         domain.ViewDiagram,
	domain.DetailExploded:      domain.ViewAxonometric,
	domain.DetailSite:          domain.ViewPlan,
	domain.DetailPlan:          domain.ViewPlan,
	domain.DetailSection:       domain.ViewSection,
	domain.DetailElevation:     domain.ViewElevation,
	domain.DetailLegend:        domain.ViewDiagram,
	domain.DetailMassing:       domain.ViewAxonometric,
	domain.DetailProgram:       domain.ViewDiagram,
	domain.DetailFacade:        domain.ViewElevation,
	domain.DetailStructure:     domain.ViewAxonometric,
	domain.DetailCirculation:   domain.ViewDiagram,
	domain.DetailDiagram:       domain.ViewDiagram,
}

// DetailSequenceFor は種別に応じたディテールレベル進行を count 分に整形して
// 返します。表が足りない場合は最後のエントリーを繰り返します。
func DetailSequenceFor(kind domain.ArchitecturalKind, count int) []domain.DetailLevel {
	if count < 1 {
		count = 1
	}

	table, ok := detailSequences[kind]
	if !ok {
		table = detailSequences[domain.KindDetalles]
	}

	seq := make([]domain.DetailLevel, count)
	for i := 0; i < count; i++ {
		if i < len(table) {
			seq[i] = table[i]
		} else {
			seq[i] = table[len(table)-1]
		}
	}
	return seq
}

// ViewTypeFor はディテールレベルに対応する投影方法を返します。
func ViewTypeFor(level domain.DetailLevel) domain.ViewType {
	if v, ok := viewTypeForDetail[level]; ok {
		return v
	}
	return domain.ViewDetail
}

// GenerateArchitecturalSequence はメタデータと目標パネル数から、固定の
// ディテールレベル進行に沿った建築パネル骨格の列を生成します。
func GenerateArchitecturalSequence(input string, meta domain.ArchitecturalMetadata, count int) []domain.StoryboardPrompt {
	levels := DetailSequenceFor(meta.Kind, count)

	prompts := make([]domain.StoryboardPrompt, len(levels))
	for i, level := range levels {
		prompts[i] = domain.StoryboardPrompt{
			PanelNumber: i + 1,
			PanelType:   domain.PanelEstablishing,
			Composition: domain.CompositionWide,
			DetailLevel: level,
			ViewType:    ViewTypeFor(level),
			Scale:       meta.Scale,
			UnitSystem:  meta.UnitSystem,
			Standards:   meta.Standards,
		}
	}
	return prompts
}
