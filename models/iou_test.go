package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIOUIsPending(t *testing.T) {
	iou := IOU{Status: IOUStatusPending}
	assert.True(t, iou.IsPending())

	iou.Status = IOUStatusApproved
	assert.False(t, iou.IsPending())

	iou.Status = IOUStatusRejected
	assert.False(t, iou.IsPending())
}

func TestValidIOUDecision(t *testing.T) {
	assert.True(t, ValidIOUDecision(IOUStatusApproved))
	assert.True(t, ValidIOUDecision(IOUStatusRejected))
	// pending 不是结算目标
	assert.False(t, ValidIOUDecision(IOUStatusPending))
	assert.False(t, ValidIOUDecision(""))
	assert.False(t, ValidIOUDecision("Approved"))
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	assert.Len(t, cats, 9)

	seen := make(map[string]bool)
	for _, c := range cats {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Emoji)
		assert.NotEmpty(t, c.Color)
		assert.False(t, seen[c.Name], "类别名称重复: %s", c.Name)
		seen[c.Name] = true
	}
}
