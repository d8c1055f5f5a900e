package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderStatusInProgress))
	assert.True(t, ValidOrderStatus(OrderStatusDelivered))
	assert.True(t, ValidOrderStatus(OrderStatusCancelled))
	assert.False(t, ValidOrderStatus("shipped"))
	assert.False(t, ValidOrderStatus(""))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{OrderStatusInProgress, OrderStatusDelivered, true},
		{OrderStatusInProgress, OrderStatusCancelled, true},
		{OrderStatusInProgress, OrderStatusInProgress, true},
		{OrderStatusDelivered, OrderStatusDelivered, true},
		{OrderStatusDelivered, OrderStatusInProgress, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusInProgress, false},
		{OrderStatusCancelled, OrderStatusDelivered, false},
		{"shipped", OrderStatusDelivered, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
