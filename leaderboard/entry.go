package leaderboard

import "strings"

// Entry 榜上的一条记录：车手代码+落后头车的gap秒数
type Entry struct {
	Code string
	Gap  float64
}

// gap升序，gap相同按Code字典序，保证全序
func (e Entry) Compare(o Entry) int {
	if e.Gap < o.Gap {
		return -1
	} else if e.Gap > o.Gap {
		return 1
	}
	return strings.Compare(e.Code, o.Code)
}

// Ranked 查询结果，Rank从1开始
type Ranked struct {
	Rank int
	Code string
	Gap  float64
}
