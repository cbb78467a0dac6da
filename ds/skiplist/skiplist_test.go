package skiplist

import (
	"math/rand"
	"sort"
	"testing"
)

// Int64 升序
type Int64 int64

var _ Elem[Int64] = Int64(0)

func (v Int64) Compare(o Int64) int {
	if v < o {
		return -1
	} else if v > o {
		return 1
	}
	return 0
}

// 检查每个元素的GetRank与Foreach遍历位置一致
func checkRanks[T Elem[T]](t *testing.T, sl *SkipList[T]) {
	t.Helper()
	sl.Foreach(func(d T, rank int) bool {
		if got := sl.GetRank(d); got != rank {
			t.Fatalf("GetRank(%v)=%d, foreach rank=%d", d, got, rank)
		}
		return true
	})
}

func TestSkiplistInsertOrder(t *testing.T) {
	const size = 200
	pool := make([]int, 0, size)
	for i := 1; i <= size; i++ {
		pool = append(pool, i)
	}
	r := rand.New(rand.NewSource(1))
	r.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	sl := NewSkipList[Int64]()
	for _, i := range pool {
		sl.Insert(Int64(i))
	}
	if sl.Len() != size {
		t.Fatalf("len=%d, want %d", sl.Len(), size)
	}
	// 遍历应该是升序且不重不漏
	want := Int64(1)
	sl.Foreach(func(d Int64, rank int) bool {
		if d != want {
			t.Fatalf("rank %d: got %d, want %d", rank, d, want)
		}
		want++
		return true
	})
	checkRanks(t, sl)
}

func TestSkiplistInsertReturnsRank(t *testing.T) {
	sl := NewSkipList[Int64]()
	if rk := sl.Insert(10); rk != 1 {
		t.Fatalf("first insert rank=%d", rk)
	}
	if rk := sl.Insert(30); rk != 2 {
		t.Fatalf("insert 30 rank=%d", rk)
	}
	if rk := sl.Insert(20); rk != 2 {
		t.Fatalf("insert 20 rank=%d", rk)
	}
	if rk := sl.Insert(5); rk != 1 {
		t.Fatalf("insert 5 rank=%d", rk)
	}
}

func TestSkiplistRemove(t *testing.T) {
	sl := NewSkipList[Int64]()
	for i := 1; i <= 50; i++ {
		sl.Insert(Int64(i))
	}
	if sl.Remove(Int64(100)) {
		t.Fatal("remove absent should be false")
	}
	if sl.Len() != 50 {
		t.Fatalf("len changed by failed remove: %d", sl.Len())
	}
	for i := 2; i <= 50; i += 2 {
		if !sl.Remove(Int64(i)) {
			t.Fatalf("remove %d failed", i)
		}
	}
	if sl.Len() != 25 {
		t.Fatalf("len=%d, want 25", sl.Len())
	}
	if sl.Contains(Int64(2)) {
		t.Fatal("2 still present")
	}
	if !sl.Contains(Int64(3)) {
		t.Fatal("3 missing")
	}
	checkRanks(t, sl)
}

func TestSkiplistUpdate(t *testing.T) {
	sl := NewSkipList[Int64]()
	for _, v := range []Int64{10, 20, 30, 40} {
		sl.Insert(v)
	}
	// 位置不变的更新走快速路径，返回0
	if rk := sl.Update(20, 25); rk != 0 {
		t.Fatalf("in-place update rank=%d", rk)
	}
	if sl.GetRank(25) != 2 {
		t.Fatalf("rank(25)=%d", sl.GetRank(25))
	}
	// 位置改变的更新返回新rank
	if rk := sl.Update(25, 50); rk != 4 {
		t.Fatalf("moving update rank=%d", rk)
	}
	if sl.Len() != 4 {
		t.Fatalf("len=%d", sl.Len())
	}
	checkRanks(t, sl)
}

func TestSkiplistSearchByRank(t *testing.T) {
	sl := NewSkipList[Int64]()
	for i := 1; i <= 10; i++ {
		sl.Insert(Int64(i * 10))
	}
	for rk := 1; rk <= 10; rk++ {
		d, ok := sl.SearchByRank(rk)
		if !ok || d != Int64(rk*10) {
			t.Fatalf("SearchByRank(%d)=%v,%v", rk, d, ok)
		}
	}
	if _, ok := sl.SearchByRank(0); ok {
		t.Fatal("rank 0 should miss")
	}
	if _, ok := sl.SearchByRank(11); ok {
		t.Fatal("rank 11 should miss")
	}
}

func TestSkiplistSearchByRankRange(t *testing.T) {
	sl := NewSkipList[Int64]()
	for i := 1; i <= 10; i++ {
		sl.Insert(Int64(i))
	}
	got := sl.SearchByRankRange(3, 6)
	want := []Int64{3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	// max超过长度时截断到表尾
	got = sl.SearchByRankRange(8, 100)
	if len(got) != 3 || got[0] != 8 {
		t.Fatalf("got %v", got)
	}
	if res := sl.SearchByRankRange(11, 12); res != nil {
		t.Fatalf("out of range: %v", res)
	}
}

func TestSkiplistClear(t *testing.T) {
	sl := NewSkipList[Int64]()
	for i := 1; i <= 100; i++ {
		sl.Insert(Int64(i))
	}
	sl.Clear()
	if sl.Len() != 0 {
		t.Fatalf("len=%d", sl.Len())
	}
	if sl.Contains(Int64(1)) {
		t.Fatal("1 present after clear")
	}
	// 清空后可以继续使用
	if rk := sl.Insert(7); rk != 1 {
		t.Fatalf("insert after clear rank=%d", rk)
	}
}

// 随机插入删除后，遍历顺序始终与有序参照一致
func TestSkiplistRandomAgainstSorted(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	sl := NewSkipList[Int64]()
	ref := map[Int64]struct{}{}

	for op := 0; op < 2000; op++ {
		v := Int64(r.Intn(500))
		if _, ok := ref[v]; ok {
			if r.Intn(2) == 0 {
				sl.Remove(v)
				delete(ref, v)
			}
			continue
		}
		sl.Insert(v)
		ref[v] = struct{}{}
	}

	sorted := make([]Int64, 0, len(ref))
	for v := range ref {
		sorted = append(sorted, v)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	if sl.Len() != len(sorted) {
		t.Fatalf("len=%d, want %d", sl.Len(), len(sorted))
	}
	idx := 0
	sl.Foreach(func(d Int64, rank int) bool {
		if d != sorted[idx] {
			t.Fatalf("rank %d: got %d, want %d", rank, d, sorted[idx])
		}
		if rank != idx+1 {
			t.Fatalf("rank %d at index %d", rank, idx)
		}
		idx++
		return true
	})
	checkRanks(t, sl)
}
