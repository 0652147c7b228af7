package service

import (
	"testing"
	"time"

	"sambert/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHousehold() *config.HouseholdConfig {
	return &config.HouseholdConfig{
		Members: []config.MemberConfig{
			{ID: 1, Name: "Bert"},
			{ID: 2, Name: "Sam"},
		},
		Currency: "RM",
	}
}

func TestSplitShare(t *testing.T) {
	cases := []struct {
		total string
		want  string
	}{
		{"100", "50"},
		{"99.90", "49.95"},
		// 奇数分的一半按三位小数精确保存，SUM(amount*2) 能还原总额
		{"100.01", "50.005"},
		{"0.01", "0.005"},
		{"0.03", "0.015"},
	}
	for _, c := range cases {
		total := decimal.RequireFromString(c.total)
		share := SplitShare(total)
		assert.Equal(t, c.want, share.String(), "total=%s", c.total)
		// 两份相加必须精确等于总额
		assert.True(t, share.Add(share).Equal(total), "total=%s", c.total)
	}
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, validateAmount(decimal.RequireFromString("10.50")))
	assert.ErrorIs(t, validateAmount(decimal.Zero), ErrAmountNotPositive)
	assert.ErrorIs(t, validateAmount(decimal.RequireFromString("-1")), ErrAmountNotPositive)
	// 最多两位小数
	assert.ErrorIs(t, validateAmount(decimal.RequireFromString("1.005")), ErrAmountPrecision)
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, validateTitle("Dinner"))
	assert.ErrorIs(t, validateTitle(""), ErrEmptyTitle)
	assert.ErrorIs(t, validateTitle("   "), ErrEmptyTitle)
}

func TestMonthRange(t *testing.T) {
	start, end, err := MonthRange(2024, 1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), end)

	// 12 月滚动到次年 1 月
	start, end, err = MonthRange(2024, 12)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), end)

	// 半开区间：12-31 23:59:59 属于 12 月，1-1 00:00:00 属于 1 月
	lastMoment := time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local)
	assert.True(t, !lastMoment.Before(start) && lastMoment.Before(end))
	newYear := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	assert.False(t, newYear.Before(end))

	_, _, err = MonthRange(2024, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, _, err = MonthRange(2024, 13)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestLedgerMembers(t *testing.T) {
	l := NewLedger(nil, testHousehold())

	assert.True(t, l.IsMember(1))
	assert.True(t, l.IsMember(2))
	assert.False(t, l.IsMember(3))

	other, err := l.OtherMember(1)
	require.NoError(t, err)
	assert.Equal(t, uint(2), other)

	other, err = l.OtherMember(2)
	require.NoError(t, err)
	assert.Equal(t, uint(1), other)

	_, err = l.OtherMember(99)
	assert.ErrorIs(t, err, ErrUnknownMember)
}

func TestIsBusinessError(t *testing.T) {
	assert.True(t, IsBusinessError(ErrAmountNotPositive))
	assert.True(t, IsBusinessError(ErrSelfDebt))
	assert.True(t, IsBusinessError(ErrInvalidPeriod))
	assert.False(t, IsBusinessError(assert.AnError))
}
