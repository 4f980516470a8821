package extract

import "regexp"

var (
	// PanelCountRegex は "4 panels" / "3 frames" / "4 paneles" 形式を捕捉します。
	PanelCountRegex = regexp.MustCompile(`(\d{1,2})\s*(?:panels?|frames?|paneles|cuadros|viñetas)`)

	// PanelCountLabelRegex は "panels: 4" のようなラベル形式を捕捉します。
	PanelCountLabelRegex = regexp.MustCompile(`(?:panels?|frames?|paneles)\s*[:=]\s*(\d{1,2})`)

	// ScaleRegex は "1:20" のような縮尺表記を捕捉します。
	ScaleRegex = regexp.MustCompile(`\b1\s*:\s*(\d{1,4})\b`)

	// StandardsRegex は設計基準のコード名（ACI 318, Eurocode 2 等）を捕捉します。
	StandardsRegex = regexp.MustCompile(`(?i)\b(ACI\s*\d*|EUROCODE\s*\d*|EUROCÓDIGO\s*\d*|ISO\s*\d+|ASTM\s*[A-Z]?\d*|DIN\s*\d*|NSR-?\d*|CTE|IBC)\b`)

	// DimensionPairRegex は "30x60 cm" / "0,25 × 0,40 m" 形式の断面寸法を捕捉します。
	DimensionPairRegex = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*[x×]\s*(\d+(?:[.,]\d+)?)\s*(mm|cm|m|in|ft)\b`)

	// DimensionSingleRegex は "250 mm" のような単独寸法を捕捉します。
	DimensionSingleRegex = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(mm|cm|m|in|ft)\b`)

	// ReinforcementRegex は "#4@200" / "12mm@150" のような配筋表記を捕捉します。
	ReinforcementRegex = regexp.MustCompile(`(#\d+|\d+\s*mm|[øφ]\s*\d+)\s*@\s*(\d+)`)
)
