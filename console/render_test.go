package console

import (
	"bytes"
	"testing"

	"raceboard/leaderboard"

	"github.com/stretchr/testify/assert"
)

func TestFormatGap(t *testing.T) {
	assert.Equal(t, "Leader", FormatGap(1, 0))
	assert.Equal(t, "Leader", FormatGap(1, 5.5))
	assert.Equal(t, "+11.850s", FormatGap(2, 11.85))
	assert.Equal(t, "+0.000s", FormatGap(3, 0))
}

func TestWriteStandings(t *testing.T) {
	rows := []leaderboard.Ranked{
		{Rank: 1, Code: "LEC", Gap: 0},
		{Rank: 2, Code: "SAI", Gap: 11.850},
		{Rank: 3, Code: "VER", Gap: 12.252},
	}
	var buf bytes.Buffer
	WriteStandings(&buf, rows)

	out := buf.String()
	assert.Contains(t, out, "POS")
	assert.Contains(t, out, "DRIVER")
	assert.Contains(t, out, "LEC")
	assert.Contains(t, out, "Leader")
	assert.Contains(t, out, "+12.252s")
}
