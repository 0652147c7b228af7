package service

import "errors"

// 业务规则错误
// 与存储层错误严格区分：下列哨兵错误都在任何写入发生之前返回（或在事务内
// 回滚后返回），调用方用 errors.Is 判断后映射为对用户可见的提示；
// 其余错误一律视为存储层故障，向上传递，不得吞掉。
var (
	// ErrAmountNotPositive 金额必须大于 0
	ErrAmountNotPositive = errors.New("金额必须大于 0")
	// ErrAmountPrecision 金额最多保留两位小数
	ErrAmountPrecision = errors.New("金额最多保留两位小数")
	// ErrEmptyTitle 标题不能为空
	ErrEmptyTitle = errors.New("标题不能为空")
	// ErrSelfDebt 不能给自己记欠款
	ErrSelfDebt = errors.New("欠款双方不能是同一人")
	// ErrUnknownMember 不是账本成员
	ErrUnknownMember = errors.New("不是账本成员")
	// ErrUnknownCategory 类别不存在
	ErrUnknownCategory = errors.New("类别不存在")
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrInvalidTransition 借还记录已不在待确认状态，不能重复结算
	ErrInvalidTransition = errors.New("借还记录已结算，不能重复操作")
	// ErrInvalidPeriod 月份必须在 1-12 之间
	ErrInvalidPeriod = errors.New("月份必须在 1-12 之间")
	// ErrInvalidDecision 结算决定只能是 approved 或 rejected
	ErrInvalidDecision = errors.New("结算决定只能是 approved 或 rejected")
)

// IsBusinessError 是否为业务规则错误（而非存储层错误）
func IsBusinessError(err error) bool {
	for _, target := range []error{
		ErrAmountNotPositive,
		ErrAmountPrecision,
		ErrEmptyTitle,
		ErrSelfDebt,
		ErrUnknownMember,
		ErrUnknownCategory,
		ErrNotFound,
		ErrInvalidTransition,
		ErrInvalidPeriod,
		ErrInvalidDecision,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
