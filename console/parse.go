package console

import (
	"math"
	"strconv"
	"strings"

	"raceboard/errs"
)

// ParseCode 校验车手代码：必须是3个字母，统一转大写
func ParseCode(s string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if len(code) != 3 {
		return "", errs.InvalidCode.Printf("input=%q", s)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return "", errs.InvalidCode.Printf("input=%q", s)
		}
	}
	return code, nil
}

// ParseGap 校验gap：必须是非负的有限数值
// 非负是交互层的领域约束，榜单核心本身允许负数
func ParseGap(s string) (float64, error) {
	gap, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errs.InvalidScore.Printf("input=%q", s)
	}
	if math.IsNaN(gap) || math.IsInf(gap, 0) {
		return 0, errs.InvalidScore.Printf("input=%q", s)
	}
	if gap < 0 {
		return 0, errs.NegativeGap.Printf("gap=%v", gap)
	}
	return gap, nil
}
