package ui

import (
	"fmt"

	"github.com/kraitsura/lelscale/pkg/model"
	"github.com/kraitsura/lelscale/pkg/units"
)

// GasItem wraps model.Gas for the gas selector
type GasItem struct {
	Gas model.Gas
}

func (i GasItem) Title() string {
	return i.Gas.DisplayName()
}

func (i GasItem) Description() string {
	formula := i.Gas.Formula
	if !i.Gas.HasFormula() {
		formula = "—"
	}
	return fmt.Sprintf("%s • LEL %s • UEL %s", formula, units.FormatLimit(i.Gas.LEL), units.FormatLimit(i.Gas.UEL))
}

func (i GasItem) FilterValue() string {
	return i.Gas.Name + " " + i.Gas.NameLocal + " " + i.Gas.ID + " " + i.Gas.Formula
}
