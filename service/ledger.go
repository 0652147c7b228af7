package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sambert/config"
	"sambert/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 平摊时的除数与存储精度
// 金额入参限制两位小数，平摊一半最多产生三位小数（如 100.01 / 2 = 50.005），
// 按三位小数落库即可精确还原，不存在舍入漂移。
var two = decimal.NewFromInt(2)

const splitScale = 3

// Ledger 账本核心服务
// 持有注入的数据库句柄和配置的成员对，负责消费 / 借还记录的创建、结算和汇总，
// 是唯一允许写 spendings / ious 两张表的地方。
type Ledger struct {
	db      *gorm.DB
	members [2]uint
}

// NewLedger 创建账本服务
// household 必须已通过 config 校验（恰好两名成员，ID 互不相同）
func NewLedger(db *gorm.DB, household *config.HouseholdConfig) *Ledger {
	return &Ledger{
		db:      db,
		members: [2]uint{household.Members[0].ID, household.Members[1].ID},
	}
}

// DB 返回底层数据库句柄（只读查询使用）
func (l *Ledger) DB() *gorm.DB {
	return l.db
}

// IsMember 是否为账本成员
func (l *Ledger) IsMember(id uint) bool {
	return id == l.members[0] || id == l.members[1]
}

// OtherMember 返回成员对中的另一人
func (l *Ledger) OtherMember(id uint) (uint, error) {
	switch id {
	case l.members[0]:
		return l.members[1], nil
	case l.members[1]:
		return l.members[0], nil
	default:
		return 0, fmt.Errorf("成员 %d: %w", id, ErrUnknownMember)
	}
}

// SplitShare 计算平摊的人均金额（总额的一半，三位小数精确保存）
func SplitShare(total decimal.Decimal) decimal.Decimal {
	return total.DivRound(two, splitScale)
}

// validateAmount 金额必须为正且最多两位小数
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if !amount.Equal(amount.Round(2)) {
		return ErrAmountPrecision
	}
	return nil
}

// validateTitle 标题去空白后不能为空
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// categoryExists 在给定事务/句柄上确认类别存在
func categoryExists(tx *gorm.DB, categoryID uint) error {
	var cat models.Category
	if err := tx.First(&cat, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("类别 %d: %w", categoryID, ErrUnknownCategory)
		}
		return fmt.Errorf("查询类别失败: %w", err)
	}
	return nil
}

// RecordSpending 记录一笔个人消费
// spentAt 为零值时取当前时间
func (l *Ledger) RecordSpending(userID uint, title string, amount decimal.Decimal, categoryID uint, notes string, spentAt time.Time) (*models.Spending, error) {
	if !l.IsMember(userID) {
		return nil, fmt.Errorf("成员 %d: %w", userID, ErrUnknownMember)
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := categoryExists(l.db, categoryID); err != nil {
		return nil, err
	}
	if spentAt.IsZero() {
		spentAt = time.Now()
	}

	spending := models.Spending{
		UserID:     userID,
		Title:      title,
		Amount:     amount,
		CategoryID: categoryID,
		Notes:      notes,
		SpentAt:    spentAt,
		IsShared:   false,
	}
	if err := l.db.Create(&spending).Error; err != nil {
		return nil, fmt.Errorf("创建消费记录失败: %w", err)
	}
	return &spending, nil
}

// RecordSharedExpense 记录一笔两人平摊的共享消费
// total 是消费总额。付款方按一半金额记一条 is_shared 的消费，
// 另一方欠付款方同样的一半，生成一条待确认的 IOU。两条记录在同一事务内写入，
// 不会出现只有一半的情况。
func (l *Ledger) RecordSharedExpense(title string, total decimal.Decimal, categoryID uint, notes string, payingUserID uint) (*models.Spending, *models.IOU, error) {
	otherID, err := l.OtherMember(payingUserID)
	if err != nil {
		return nil, nil, err
	}
	if err := validateTitle(title); err != nil {
		return nil, nil, err
	}
	if err := validateAmount(total); err != nil {
		return nil, nil, err
	}

	share := SplitShare(total)
	now := time.Now()

	spending := models.Spending{
		UserID:     payingUserID,
		Title:      title,
		Amount:     share,
		CategoryID: categoryID,
		Notes:      notes,
		SpentAt:    now,
		IsShared:   true,
	}
	iou := models.IOU{
		FromUserID: otherID,
		ToUserID:   payingUserID,
		Title:      title,
		Amount:     share,
		CategoryID: categoryID,
		Notes:      notes,
		Date:       now,
		Status:     models.IOUStatusPending,
	}

	err = l.db.Transaction(func(tx *gorm.DB) error {
		if err := categoryExists(tx, categoryID); err != nil {
			return err
		}
		if err := tx.Create(&spending).Error; err != nil {
			return fmt.Errorf("创建消费记录失败: %w", err)
		}
		if err := tx.Create(&iou).Error; err != nil {
			return fmt.Errorf("创建借还记录失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &spending, &iou, nil
}

// RecordDebt 手动记一笔欠款（Pinjam）
func (l *Ledger) RecordDebt(fromUserID, toUserID uint, title string, amount decimal.Decimal, categoryID uint, notes string) (*models.IOU, error) {
	if fromUserID == toUserID {
		return nil, ErrSelfDebt
	}
	if !l.IsMember(fromUserID) {
		return nil, fmt.Errorf("成员 %d: %w", fromUserID, ErrUnknownMember)
	}
	if !l.IsMember(toUserID) {
		return nil, fmt.Errorf("成员 %d: %w", toUserID, ErrUnknownMember)
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := categoryExists(l.db, categoryID); err != nil {
		return nil, err
	}

	iou := models.IOU{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Title:      title,
		Amount:     amount,
		CategoryID: categoryID,
		Notes:      notes,
		Date:       time.Now(),
		Status:     models.IOUStatusPending,
	}
	if err := l.db.Create(&iou).Error; err != nil {
		return nil, fmt.Errorf("创建借还记录失败: %w", err)
	}
	return &iou, nil
}

// SettleDebt 结算一笔借还记录
// 只允许 pending -> approved / rejected，状态更新用
// UPDATE ... WHERE id = ? AND status = 'pending' 原子判断，两个人同时确认
// 同一笔 IOU 也只会有一次生效，不会生成两条消费记录。
// approved 时为欠款方生成一条消费记录（按结算时间记账，标题带 💕 前缀）；
// rejected 只改状态，无副作用。整个流程在一个事务内完成。
func (l *Ledger) SettleDebt(iouID uint, decision string) (*models.Spending, error) {
	if !models.ValidIOUDecision(decision) {
		return nil, ErrInvalidDecision
	}

	var created *models.Spending
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var iou models.IOU
		if err := tx.First(&iou, iouID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("借还记录 %d: %w", iouID, ErrNotFound)
			}
			return fmt.Errorf("查询借还记录失败: %w", err)
		}

		res := tx.Model(&models.IOU{}).
			Where("id = ? AND status = ?", iouID, models.IOUStatusPending).
			Update("status", decision)
		if res.Error != nil {
			return fmt.Errorf("更新借还状态失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// 记录存在但已不是 pending：已被结算过
			return fmt.Errorf("借还记录 %d 当前状态为 %s: %w", iouID, iou.Status, ErrInvalidTransition)
		}

		if decision == models.IOUStatusApproved {
			// 债务转为欠款方的真实消费，按结算时间记账
			spending := models.Spending{
				UserID:     iou.FromUserID,
				Title:      "💕 " + iou.Title,
				Amount:     iou.Amount,
				CategoryID: iou.CategoryID,
				Notes:      iou.Notes,
				SpentAt:    time.Now(),
				IsShared:   false,
			}
			if err := tx.Create(&spending).Error; err != nil {
				return fmt.Errorf("创建结算消费记录失败: %w", err)
			}
			created = &spending
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteSpending 删除消费记录（无级联：不会撤销由结算生成的其它记录）
func (l *Ledger) DeleteSpending(id uint) error {
	res := l.db.Delete(&models.Spending{}, id)
	if res.Error != nil {
		return fmt.Errorf("删除消费记录失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("消费记录 %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteIOU 删除借还记录（允许在任意状态下直接删除，绕过状态机）
func (l *Ledger) DeleteIOU(id uint) error {
	res := l.db.Delete(&models.IOU{}, id)
	if res.Error != nil {
		return fmt.Errorf("删除借还记录失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("借还记录 %d: %w", id, ErrNotFound)
	}
	return nil
}

// MonthRange 返回给定自然月的半开时间区间 [月初, 下月初)
// 月份为 1-12；用半开区间过滤可以精确处理跨月 / 跨年边界（12-31 vs 1-1）
func MonthRange(year int, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("月份 %d: %w", month, ErrInvalidPeriod)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0), nil
}

// MonthlyTotal 某成员某自然月的消费总额
func (l *Ledger) MonthlyTotal(userID uint, month, year int) (decimal.Decimal, error) {
	if !l.IsMember(userID) {
		return decimal.Zero, fmt.Errorf("成员 %d: %w", userID, ErrUnknownMember)
	}
	start, end, err := MonthRange(year, month)
	if err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	if err := l.db.Model(&models.Spending{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND spent_at >= ? AND spent_at < ?", userID, start, end).
		Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("统计月度消费失败: %w", err)
	}
	return total, nil
}

// CombinedMonthlyTotal 两人合计的某自然月消费总额
func (l *Ledger) CombinedMonthlyTotal(month, year int) (decimal.Decimal, error) {
	start, end, err := MonthRange(year, month)
	if err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	if err := l.db.Model(&models.Spending{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("spent_at >= ? AND spent_at < ?", start, end).
		Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("统计合计消费失败: %w", err)
	}
	return total, nil
}

// SharedExpensesTotal 某自然月共享消费的总额（还原平摊前的全额）
// 每条共享消费只存了人均一半，SUM(amount * 2) 把总额加回来
func (l *Ledger) SharedExpensesTotal(month, year int) (decimal.Decimal, error) {
	start, end, err := MonthRange(year, month)
	if err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	if err := l.db.Model(&models.Spending{}).
		Select("COALESCE(SUM(amount * 2), 0)").
		Where("is_shared = ? AND spent_at >= ? AND spent_at < ?", true, start, end).
		Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("统计共享消费失败: %w", err)
	}
	return total, nil
}

// CategoryAmount 类别汇总行
type CategoryAmount struct {
	Name  string          `json:"name"`
	Emoji string          `json:"emoji"`
	Value decimal.Decimal `json:"value"`
}

// CategoryBreakdown 按类别汇总消费
// userID 为 nil 统计两人合计；month/year 要么都给要么都不给，只给一个视为参数错误。
// 汇总为 0 的类别不会出现在结果里。
func (l *Ledger) CategoryBreakdown(userID *uint, month, year *int) ([]CategoryAmount, error) {
	if (month == nil) != (year == nil) {
		return nil, fmt.Errorf("month 和 year 必须同时提供: %w", ErrInvalidPeriod)
	}
	if userID != nil && !l.IsMember(*userID) {
		return nil, fmt.Errorf("成员 %d: %w", *userID, ErrUnknownMember)
	}

	query := l.db.Model(&models.Spending{}).
		Select("categories.name AS name, categories.emoji AS emoji, SUM(spendings.amount) AS value").
		Joins("JOIN categories ON categories.id = spendings.category_id").
		Group("categories.id, categories.name, categories.emoji").
		Having("SUM(spendings.amount) > 0").
		Order("SUM(spendings.amount) DESC")

	if userID != nil {
		query = query.Where("spendings.user_id = ?", *userID)
	}
	if month != nil {
		start, end, err := MonthRange(*year, *month)
		if err != nil {
			return nil, err
		}
		query = query.Where("spendings.spent_at >= ? AND spendings.spent_at < ?", start, end)
	}

	var rows []CategoryAmount
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("统计类别汇总失败: %w", err)
	}
	return rows, nil
}
