package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"cinemood/internal/catalog"
)

// renderMovieTable renders the recommendation list as a compact table.
// Plot and link are printed separately per movie since they don't fit a
// column.
func renderMovieTable(movies []catalog.Movie) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"#", "Title", "Year", "Rating", "Genre"})

	for i, m := range movies {
		tw.AppendRow(table.Row{i + 1, m.Title, m.Year, m.Rating, m.Genre})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
