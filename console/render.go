package console

import (
	"fmt"
	"io"

	"raceboard/leaderboard"

	"github.com/olekukonko/tablewriter"
)

// FormatGap 第1名显示Leader，其余显示+gap秒
func FormatGap(rank int, gap float64) string {
	if rank == 1 {
		return "Leader"
	}
	return fmt.Sprintf("+%.3fs", gap)
}

// WriteStandings 表格输出名次
func WriteStandings(w io.Writer, rows []leaderboard.Ranked) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Pos", "Driver", "Gap"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	for _, r := range rows {
		table.Append([]string{
			fmt.Sprintf("%d", r.Rank),
			r.Code,
			FormatGap(r.Rank, r.Gap),
		})
	}
	table.Render()
}
