// Package pdf renders the billing report (Abrechnung) as an A4 document:
// header with municipality and period, one table row per billed entry,
// hour totals at the bottom.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/gemeinde/wegewart-api/internal/application/billing"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implements billing.ReportPDFGenerator using Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF renders the report and returns its bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, data appbilling.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(data.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, e := range data.Entries {
		m.AddRows(entryRow(e))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(data appbilling.ReportData) core.Row {
	scope := "alle Ortsteile"
	if data.Ortsteil != "" {
		scope = "Ortsteil " + data.Ortsteil
	}
	return row.New(14).Add(
		col.New(8).Add(
			text.New(data.Title, props.Text{Size: 14, Style: fontstyle.Bold, Color: colorPrimary}),
			text.New(scope, props.Text{Top: 7, Size: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Zeitraum", props.Text{Size: 8, Align: align.Right, Color: colorGray}),
			text.New(data.Period, props.Text{Top: 4, Size: 10, Align: align.Right}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 8, Style: fontstyle.Bold}
	return row.New(6).Add(
		col.New(2).Add(text.New("Datum", header)),
		col.New(3).Add(text.New("Wegewart", header)),
		col.New(4).Add(text.New("Tätigkeit", header)),
		col.New(1).Add(text.New("Std.", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2).Add(text.New("Maschine", header)),
	)
}

func entryRow(e *entity.WorkEntry) core.Row {
	cell := props.Text{Size: 8}
	machine := ""
	if e.MachineName != nil {
		machine = *e.MachineName
		if e.MachineHours != nil {
			machine += " (" + e.MachineHours.StringFixed(2) + " h)"
		}
	}
	return row.New(5).Add(
		col.New(2).Add(text.New(e.Datum.Format("02.01.2006"), cell)),
		col.New(3).Add(text.New(e.WorkerName, cell)),
		col.New(4).Add(text.New(e.Description, cell)),
		col.New(1).Add(text.New(e.Hours.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(machine, cell)),
	)
}

func totalsRow(data appbilling.ReportData) core.Row {
	label := props.Text{Size: 9, Style: fontstyle.Bold}
	return row.New(8).Add(
		col.New(6).Add(text.New(fmt.Sprintf("%d abgerechnete Einsätze", len(data.Entries)), props.Text{Size: 9, Color: colorGray})),
		col.New(3).Add(text.New("Arbeitsstunden: "+data.TotalHours.StringFixed(2), label)),
		col.New(3).Add(text.New("Maschinenstunden: "+data.TotalMachineHours.StringFixed(2), label)),
	)
}
