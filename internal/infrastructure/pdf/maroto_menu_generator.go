// Package pdf renderiza la carta del menú como PDF A4 (Maroto v2).
//
// Layout de la página:
//
//	┌───────────────────────────────────────────────┐
//	│  TÍTULO (nombre del comedor)                  │
//	│  ───────────────────────────────────────────  │
//	│  CATEGORÍA (descripción)                      │
//	│    Item ........................... $ precio  │
//	│      + Variante ................... $ extra   │
//	│  ───────────────────────────────────────────  │
//	│  (siguiente categoría)                        │
//	└───────────────────────────────────────────────┘
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

	"github.com/jhoicas/messmate-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 166, Green: 74, Blue: 36}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.MenuPDFGenerator = (*MarotoMenuGenerator)(nil)

// MarotoMenuGenerator implementa usecase.MenuPDFGenerator usando Maroto v2.
type MarotoMenuGenerator struct{}

// NewMarotoMenuGenerator construye el generador.
func NewMarotoMenuGenerator() *MarotoMenuGenerator {
	return &MarotoMenuGenerator{}
}

// GenerateMenuPDF genera la carta y devuelve sus bytes.
func (g *MarotoMenuGenerator) GenerateMenuPDF(_ context.Context, title string, sections []usecase.MenuSection) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(12).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 18, Color: colorPrimary, Align: align.Center,
			}),
		),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, section := range sections {
		m.AddRows(sectionHeaderRow(section))
		for _, ln := range section.Lines {
			m.AddRows(itemRow(ln))
			for _, va := range ln.Variants {
				m.AddRows(variantRow(va))
			}
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar carta: %w", err)
	}
	return doc.GetBytes(), nil
}

// sectionHeaderRow: nombre de la categoría + descripción.
func sectionHeaderRow(section usecase.MenuSection) core.Row {
	cols := []core.Col{
		col.New(6).Add(
			text.New(section.Category, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
	}
	if section.Description != "" {
		cols = append(cols, col.New(6).Add(
			text.New(section.Description, props.Text{
				Size: 9, Color: colorGray, Top: 4, Align: align.Right,
			}),
		))
	}
	return row.New(10).Add(cols...)
}

// itemRow: nombre + descripción (izq), precio (der). Los no disponibles se marcan.
func itemRow(ln usecase.MenuLine) core.Row {
	name := ln.Name
	if !ln.IsAvailable {
		name += " (no disponible)"
	}
	left := []core.Component{
		text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
	}
	if ln.Description != "" {
		left = append(left, text.New(ln.Description, props.Text{
			Size: 8, Color: colorGray, Top: 6,
		}))
	}
	return row.New(11).Add(
		col.New(9).Add(left...),
		col.New(3).Add(
			text.New("$ "+ln.Price.StringFixed(2), props.Text{
				Size: 10, Top: 1, Align: align.Right,
			}),
		),
	)
}

// variantRow: variante indentada con su precio adicional.
func variantRow(va usecase.MenuVariantLine) core.Row {
	name := "+ " + va.Name
	if !va.IsAvailable {
		name += " (no disponible)"
	}
	return row.New(6).Add(
		col.New(9).Add(
			text.New(name, props.Text{Size: 9, Color: colorGray, Left: 5}),
		),
		col.New(3).Add(
			text.New("+ $ "+va.Price.StringFixed(2), props.Text{
				Size: 9, Color: colorGray, Align: align.Right,
			}),
		),
	)
}
