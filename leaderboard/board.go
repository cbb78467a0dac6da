package leaderboard

import (
	"math"

	"raceboard/ds/skiplist"
	"raceboard/errs"

	"github.com/armon/go-radix"
)

// Board 排行榜：跳跃表维护名次，dict定位车手，radix树支持按前缀列出代码
// 非协程安全，由持有者串行访问
type Board struct {
	rt    *skiplist.RankTree[string, Entry]
	codes *radix.Tree
}

func New() *Board {
	return &Board{
		rt:    skiplist.NewRankTree[string, Entry](),
		codes: radix.New(),
	}
}

// Upsert 添加或更新车手的gap
// gap必须是有限数值，NaN/Inf返回InvalidScore且不改变榜单；负数在这一层允许
func (b *Board) Upsert(code string, gap float64) error {
	if math.IsNaN(gap) || math.IsInf(gap, 0) {
		return errs.InvalidScore.Printf("code=%s gap=%v", code, gap)
	}
	b.rt.Update(code, Entry{Code: code, Gap: gap})
	b.codes.Insert(code, nil)
	return nil
}

// Remove 移除车手，不存在返回false（不是错误）
func (b *Board) Remove(code string) bool {
	if !b.rt.Remove(code) {
		return false
	}
	b.codes.Delete(code)
	return true
}

// Rank 车手当前名次，从1开始；不存在时ok为false
func (b *Board) Rank(code string) (int, bool) {
	rk := b.rt.GetRank(code)
	if rk < 1 {
		return 0, false
	}
	return rk, true
}

// Gap 车手当前的gap，O(1)
func (b *Board) Gap(code string) (float64, bool) {
	e, ok := b.rt.Get(code)
	if !ok {
		return 0, false
	}
	return e.Gap, true
}

// TopK 前k名，k超过榜单长度时返回全部
func (b *Board) TopK(k int) []Ranked {
	if k <= 0 {
		return nil
	}
	entries := b.rt.QueryByRankRange(1, k)
	res := make([]Ranked, 0, len(entries))
	for i, e := range entries {
		res = append(res, Ranked{Rank: i + 1, Code: e.Code, Gap: e.Gap})
	}
	return res
}

// Foreach 按名次遍历全榜，f返回false时终止
func (b *Board) Foreach(f func(Ranked) bool) {
	b.rt.Foreach(func(e Entry, rank int) bool {
		return f(Ranked{Rank: rank, Code: e.Code, Gap: e.Gap})
	})
}

func (b *Board) Size() int {
	return b.rt.Len()
}

func (b *Board) Clear() {
	b.rt.Clear()
	b.codes = radix.New()
}

// Codes 全部车手代码，字典序
func (b *Board) Codes() []string {
	return b.CodesWithPrefix("")
}

// CodesWithPrefix 以prefix开头的车手代码，字典序
func (b *Board) CodesWithPrefix(prefix string) []string {
	res := make([]string, 0, b.codes.Len())
	b.codes.WalkPrefix(prefix, func(s string, _ interface{}) bool {
		res = append(res, s)
		return false
	})
	return res
}
