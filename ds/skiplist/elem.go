package skiplist

// 表中元素需要提供全序比较
// Compare返回负数表示小于o，0表示等于o，正数表示大于o
// 相等(==0)的元素在表中视为同一个，由上层保证唯一性
type Elem[T any] interface {
	Compare(o T) int
}
