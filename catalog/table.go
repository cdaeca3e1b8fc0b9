package catalog

import (
	"strconv"

	"github.com/anisan-cli/eprange/selection"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Table renders one row per season with its slot and the value the slot starts with.
func (s *Series) Table() string {
	sync := s.Synchronizer(nil)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(s.Title)
	tw.AppendHeader(table.Row{"Season", "Name", "Episodes", "Slot", "Selected"})

	for _, season := range s.Seasons {
		number := selection.Season(season.Number)

		var selected string
		if slot, ok := sync.Slot(number); ok {
			selected = slot.Value()
		}

		tw.AppendRow(table.Row{
			strconv.Itoa(season.Number),
			season.Label(),
			strconv.Itoa(len(season.Episodes)),
			selection.SlotKey(number),
			selected,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
