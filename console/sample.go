package console

import "raceboard/leaderboard"

type sampleDriver struct {
	code string
	gap  float64
}

// 示例发车数据
var sampleGrid = []sampleDriver{
	{"LEC", 0.0}, {"SAI", 11.850}, {"VER", 12.252},
	{"PER", 14.777}, {"BOT", 16.347}, {"HAM", 18.481},
	{"GAS", 18.332}, {"ALO", 20.359}, {"NOR", 20.155},
	{"TSU", 20.570},
}

// LoadSample 灌入示例数据，返回条数
func LoadSample(b *leaderboard.Board) int {
	for _, d := range sampleGrid {
		_ = b.Upsert(d.code, d.gap)
	}
	return len(sampleGrid)
}
