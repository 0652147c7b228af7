package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "操作失败"
	testErr := errors.New("internal database error")

	// nil err 返回 fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release 模式返回 fallback，不暴露错误详情
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug 模式返回 err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// GlobalConfig 为 nil 时返回 err.Error()（视为开发环境）
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestHouseholdConfigValidate(t *testing.T) {
	valid := HouseholdConfig{
		Currency: "RM",
		Members: []MemberConfig{
			{ID: 1, Name: "Bert", BudgetCap: "3000"},
			{ID: 2, Name: "Sam", BudgetCap: "3000"},
		},
	}
	assert.NoError(t, valid.Validate())

	// 成员数量必须是两名
	one := HouseholdConfig{Members: valid.Members[:1]}
	assert.Error(t, one.Validate())

	// ID 不能重复
	dup := HouseholdConfig{Members: []MemberConfig{
		{ID: 1, Name: "Bert"},
		{ID: 1, Name: "Sam"},
	}}
	assert.Error(t, dup.Validate())

	// 名称不能为空
	noName := HouseholdConfig{Members: []MemberConfig{
		{ID: 1, Name: "Bert"},
		{ID: 2, Name: "  "},
	}}
	assert.Error(t, noName.Validate())

	// budget_cap 必须是合法的非负数字
	badCap := HouseholdConfig{Members: []MemberConfig{
		{ID: 1, Name: "Bert", BudgetCap: "abc"},
		{ID: 2, Name: "Sam"},
	}}
	assert.Error(t, badCap.Validate())

	negCap := HouseholdConfig{Members: []MemberConfig{
		{ID: 1, Name: "Bert", BudgetCap: "-1"},
		{ID: 2, Name: "Sam"},
	}}
	assert.Error(t, negCap.Validate())

	// budget_cap 为空表示不设上限
	noCap := HouseholdConfig{Members: []MemberConfig{
		{ID: 1, Name: "Bert"},
		{ID: 2, Name: "Sam"},
	}}
	assert.NoError(t, noCap.Validate())
}

func TestLoadConfigDefaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Len(t, cfg.Household.Members, 2)
	assert.Equal(t, "RM", cfg.Household.Currency)

	m, ok := cfg.Household.MemberByID(2)
	assert.True(t, ok)
	assert.Equal(t, "Sam", m.Name)

	_, ok = cfg.Household.MemberByID(3)
	assert.False(t, ok)
}
