package domain

// ArchitecturalKind は建築パイプラインのプロジェクト種別です。
type ArchitecturalKind string

const (
	KindDetalles   ArchitecturalKind = "detalles"   // 構造ディテール集
	KindPlanos     ArchitecturalKind = "planos"     // 図面セット
	KindPrototipos ArchitecturalKind = "prototipos" // ボリューム・プロトタイプ
)

// UnitSystem は図面で使用する単位系です。
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

// ViewType は図面の投影・表現方法です。
type ViewType string

const (
	ViewPlan        ViewType = "plan"
	ViewSection     ViewType = "section"
	ViewElevation   ViewType = "elevation"
	ViewDetail      ViewType = "detail"
	ViewAxonometric ViewType = "axonometric"
	ViewPerspective ViewType = "perspective"
	ViewDiagram     ViewType = "diagram"
)

// DetailLevel はパネルごとの技術的な焦点（ディテールレベル）です。
type DetailLevel string

const (
	DetailOverview      DetailLevel = "overview"
	DetailReinforcement DetailLevel = "reinforcement"
	DetailConnection    DetailLevel = "connection"
	DetailNotes         DetailLevel = "notes"
	DetailExploded      DetailLevel = "exploded"
	DetailSite          DetailLevel = "site"
	DetailPlan          DetailLevel = "plan"
	DetailSection       DetailLevel = "section"
	DetailElevation     DetailLevel = "elevation"
	DetailLegend        DetailLevel = "legend"
	DetailMassing       DetailLevel = "massing"
	DetailProgram       DetailLevel = "program"
	DetailFacade        DetailLevel = "facade"
	DetailStructure     DetailLevel = "structure"
	DetailCirculation   DetailLevel = "circulation"
	DetailDiagram       DetailLevel = "diagram"
)

// ArchitecturalMetadata は建築プロジェクト全体の図面設定を保持します。
type ArchitecturalMetadata struct {
	Kind           ArchitecturalKind `json:"kind"`
	UnitSystem     UnitSystem        `json:"unit_system"`
	PrimaryView    ViewType          `json:"primary_view"`
	SecondaryView  ViewType          `json:"secondary_view,omitempty"`
	Scale          string            `json:"scale"`
	Standards      []string          `json:"standards,omitempty"`
	DetailSequence []DetailLevel     `json:"detail_sequence"`

	// planos（図面セット）固有
	SheetSet []string `json:"sheet_set,omitempty"`
	Levels   int      `json:"levels,omitempty"`

	// prototipos（プロトタイプ）固有
	BuildingType string   `json:"building_type,omitempty"`
	Floors       int      `json:"floors,omitempty"`
	Program      []string `json:"program,omitempty"`
}
