package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotsFullBusinessDay(t *testing.T) {
	slots := GenerateSlots(TimeOfDay{11, 0}, TimeOfDay{22, 0}, 30)

	require.Len(t, slots, 22)
	assert.Equal(t, "11:00", slots[0].String())
	assert.Equal(t, "11:30", slots[1].String())
	assert.Equal(t, "21:30", slots[len(slots)-1].String())
}

func TestGenerateSlotsExcludesEndEvenWhenReachable(t *testing.T) {
	slots := GenerateSlots(TimeOfDay{10, 0}, TimeOfDay{12, 0}, 60)
	require.Len(t, slots, 2)
	assert.Equal(t, "10:00", slots[0].String())
	assert.Equal(t, "11:00", slots[1].String())
}

func TestGenerateSlotsStepAndOrder(t *testing.T) {
	slots := GenerateSlots(TimeOfDay{9, 0}, TimeOfDay{10, 0}, 15)
	require.Len(t, slots, 4)
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 15, slots[i].Minutes()-slots[i-1].Minutes())
		assert.True(t, slots[i-1].Before(slots[i]))
	}
}

func TestGenerateSlotsDegenerateInputs(t *testing.T) {
	assert.Empty(t, GenerateSlots(TimeOfDay{11, 0}, TimeOfDay{22, 0}, 0))
	assert.Empty(t, GenerateSlots(TimeOfDay{11, 0}, TimeOfDay{22, 0}, -30))
	assert.Empty(t, GenerateSlots(TimeOfDay{22, 0}, TimeOfDay{11, 0}, 30))
	assert.Empty(t, GenerateSlots(TimeOfDay{11, 0}, TimeOfDay{11, 0}, 30))
}

func TestGenerateSlotsUnevenInterval(t *testing.T) {
	// 45-minute steps over a 2-hour window: 10:00, 10:45, 11:30.
	slots := GenerateSlots(TimeOfDay{10, 0}, TimeOfDay{12, 0}, 45)
	require.Len(t, slots, 3)
	assert.Equal(t, "11:30", slots[2].String())
}
