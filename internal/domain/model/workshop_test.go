package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkillLevel(t *testing.T) {
	level, ok := ParseSkillLevel(" Advanced ")
	assert.True(t, ok)
	assert.Equal(t, SkillAdvanced, level)

	_, ok = ParseSkillLevel("expert")
	assert.False(t, ok)
}

func TestWorkshop_WithRegistration(t *testing.T) {
	w := Workshop{ID: "w1", CurrentParticipants: 3}

	reg := w.WithRegistration(true)
	assert.True(t, reg.Registered)
	assert.Equal(t, 4, reg.CurrentParticipants)
	assert.Equal(t, 3, w.CurrentParticipants, "receiver is a value copy")

	unreg := reg.WithRegistration(false)
	assert.False(t, unreg.Registered)
	assert.Equal(t, 3, unreg.CurrentParticipants)

	floor := Workshop{ID: "w2"}.WithRegistration(false)
	assert.Equal(t, 0, floor.CurrentParticipants)
}

func TestWorkshop_IsFull(t *testing.T) {
	assert.False(t, Workshop{CurrentParticipants: 50}.IsFull(), "unlimited")
	assert.True(t, Workshop{MaxParticipants: 10, CurrentParticipants: 10}.IsFull())
	assert.False(t, Workshop{MaxParticipants: 10, CurrentParticipants: 9}.IsFull())
}

func TestWorkshopList_WithRegistration(t *testing.T) {
	list := WorkshopList{Workshops: []Workshop{
		{ID: "w1", CurrentParticipants: 1},
		{ID: "w2", CurrentParticipants: 5},
	}}

	got := list.WithRegistration("w2", true)

	assert.Equal(t, 1, got.Workshops[0].CurrentParticipants)
	assert.False(t, got.Workshops[0].Registered)
	assert.Equal(t, 6, got.Workshops[1].CurrentParticipants)
	assert.True(t, got.Workshops[1].Registered)
	assert.Equal(t, 5, list.Workshops[1].CurrentParticipants, "original list untouched")
}

func TestWorkshopFilters_Values(t *testing.T) {
	f := WorkshopFilters{Category: "color", SkillLevel: SkillBeginner, Search: "  balayage ", Page: 2}
	v := f.Values()

	assert.Equal(t, "color", v.Get("category"))
	assert.Equal(t, "beginner", v.Get("skill_level"))
	assert.Equal(t, "balayage", v.Get("search"))
	assert.Equal(t, "2", v.Get("page"))
	assert.False(t, v.Has("limit"))
	assert.False(t, v.Has("date_range"))

	assert.Equal(t, "", WorkshopFilters{}.Key())
	assert.Equal(t, f.Key(), WorkshopFilters{Page: 2, Search: "balayage", SkillLevel: SkillBeginner, Category: "color"}.Key())
}

func TestClampProgress(t *testing.T) {
	assert.Equal(t, 0, ClampProgress(-5))
	assert.Equal(t, 42, ClampProgress(42))
	assert.Equal(t, 100, ClampProgress(140))
}

func TestPagination_HasNext(t *testing.T) {
	assert.True(t, Pagination{Page: 1, TotalPages: 3}.HasNext())
	assert.False(t, Pagination{Page: 3, TotalPages: 3}.HasNext())
}
