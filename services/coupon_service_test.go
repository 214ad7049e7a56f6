package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pixeldesignindia/organic-api/models"
)

func TestCouponValid(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour).UnixMilli()
	past := now.Add(-time.Minute).UnixMilli()

	active := func(expiry int64) models.Coupon {
		c := models.Coupon{ExpirationDate: expiry}
		c.IsActive = true
		return c
	}

	assert.True(t, couponValid(active(future), now))
	assert.False(t, couponValid(active(past), now))
	assert.False(t, couponValid(active(now.UnixMilli()), now), "expiring this instant counts as expired")

	deleted := active(future)
	deleted.IsDeleted = true
	assert.False(t, couponValid(deleted, now))

	inactive := active(future)
	inactive.IsActive = false
	assert.False(t, couponValid(inactive, now))
}
