package errs

const (
	ErrCode_OK           = 0
	ErrCode_Unknown      = 1
	ErrCode_InvalidScore = 2
	ErrCode_InvalidCode  = 3
	ErrCode_NegativeGap  = 4
)

var (
	Unknown      = CreateCodeError(ErrCode_Unknown, "UNKNOWN")
	InvalidScore = CreateCodeError(ErrCode_InvalidScore, "INVALID_SCORE")
	InvalidCode  = CreateCodeError(ErrCode_InvalidCode, "INVALID_CODE")
	NegativeGap  = CreateCodeError(ErrCode_NegativeGap, "NEGATIVE_GAP")
)
