// Package pdf builds the printable employee QR badge.
//
// A4 layout:
//
//	┌─────────────────────────────────────┐
//	│  Employee QR Code                   │
//	│  Name: <employee>                   │
//	│  QR code: <payload>                 │
//	│                                     │
//	│              [ QR ]                 │
//	│                                     │
//	│  Instructions: scan to check in/out │
//	│  Generated: <timestamp> UTC         │
//	└─────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// BadgeRenderer produces the downloadable QR badge document.
type BadgeRenderer interface {
	RenderEmployeeBadge(employeeName, qrPayload string) ([]byte, error)
}

type MarotoBadgeRenderer struct{}

func NewMarotoBadgeRenderer() *MarotoBadgeRenderer { return &MarotoBadgeRenderer{} }

func (g *MarotoBadgeRenderer) RenderEmployeeBadge(employeeName, qrPayload string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(20).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Employee QR Code", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(14).Add(col.New(12).Add(
		text.New("Employee QR Code", props.Text{
			Style: fontstyle.Bold, Size: 22, Top: 1, Align: align.Center,
		}),
	)))
	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New("Name: "+employeeName, props.Text{Size: 14, Top: 2}),
	)))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("QR code: "+qrPayload, props.Text{Size: 11, Top: 1, Color: colorGray}),
	)))

	m.AddRows(line.NewRow(4, props.Line{Color: colorGray, Thickness: 0.3}))

	// Centered QR block
	m.AddRows(row.New(90).Add(
		col.New(3),
		col.New(6).Add(code.NewQr(qrPayload, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(3),
	))

	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Instructions:", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
	)))
	for _, instruction := range []string{
		"1. Scan the QR code to register a check-in or check-out",
		"2. Hold the QR code in a well-lit spot while scanning",
		"3. Contact your administrator if scanning fails",
	} {
		m.AddRows(row.New(5).Add(col.New(12).Add(
			text.New(instruction, props.Text{Size: 9, Top: 0.5, Color: colorGray}),
		)))
	}

	m.AddRows(line.NewRow(6))
	m.AddRows(row.New(5).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Generated: %s UTC", time.Now().UTC().Format("2006-01-02 15:04:05")),
			props.Text{Size: 8, Color: colorGray}),
	)))
	m.AddRows(row.New(4).Add(col.New(12).Add(
		text.New("TimeTracker Pro - work time management system", props.Text{Size: 8, Color: colorGray}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate badge: %w", err)
	}
	return doc.GetBytes(), nil
}
