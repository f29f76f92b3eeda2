package zone

// Presentation is the static label/colour/advice side table for a zone.
// The classifier never reads it.
type Presentation struct {
	Label      string `json:"label"`
	LabelLocal string `json:"label_local,omitempty"`
	Tag        string `json:"tag"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	Glow       string `json:"glow"`
	Advice     string `json:"advice"`
	Band       string `json:"band"`
}

var presentations = map[Zone]Presentation{
	Safe: {
		Label:      "Safe",
		LabelLocal: "בטוח",
		Tag:        "SAFE",
		Icon:       "✓",
		Color:      "#059669",
		Glow:       "#06d67d",
		Advice:     "Low concentration. No ignition hazard, keep monitoring.",
		Band:       "Below 10% LEL. Safe, continue monitoring",
	},
	Caution: {
		Label:      "Caution - 10% LEL",
		LabelLocal: "זהירות — 10% LEL",
		Tag:        "CAUTION",
		Icon:       "⚠",
		Color:      "#d97706",
		Glow:       "#fbbf24",
		Advice:     "Crossed 10% LEL, the first detector alarm. Investigate the source.",
		Band:       "10-20% LEL. First alarm threshold",
	},
	Warning: {
		Label:      "Warning - 20% LEL",
		LabelLocal: "אזהרה — 20% LEL",
		Tag:        "WARNING",
		Icon:       "⚠",
		Color:      "#ea580c",
		Glow:       "#fb923c",
		Advice:     "Crossed 20% LEL, evacuation alarm. Ventilate and shut off ignition sources.",
		Band:       "20% LEL to LEL. Evacuation zone",
	},
	PreLel: {
		Label:      "Danger - approaching LEL",
		LabelLocal: "סכנה — מתקרב ל-LEL",
		Tag:        "DANGER",
		Icon:       "⛔",
		Color:      "#dc2626",
		Glow:       "#f87171",
		Advice:     "Approaching the lower explosive limit. Evacuate now and handle it from a distance.",
		Band:       "50% LEL to LEL. Evacuation zone",
	},
	Explosive: {
		Label:      "Explosive range!",
		LabelLocal: "טווח נפיצות!",
		Tag:        "EXPLOSIVE",
		Icon:       "💥",
		Color:      "#dc2626",
		Glow:       "#ff0040",
		Advice:     "Inside the explosive range. Immediate danger to life, any spark will ignite the mixture.",
		Band:       "LEL to UEL. Explosive atmosphere",
	},
	TooRich: {
		Label:      "Too rich - above UEL",
		LabelLocal: "עשיר מדי — מעל UEL",
		Tag:        "TOO RICH",
		Icon:       "🚫",
		Color:      "#7c3aed",
		Glow:       "#a78bfa",
		Advice:     "Above the upper explosive limit. Still dangerous, dilution brings it back into range.",
		Band:       "Above UEL. Too rich to ignite",
	},
}

// Info returns the presentation entry for z. Unknown zones get the Safe
// entry so callers always have something to render.
func Info(z Zone) Presentation {
	if p, ok := presentations[z]; ok {
		return p
	}
	return presentations[Safe]
}
