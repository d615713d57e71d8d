package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from ReviewStatus
		to   ReviewStatus
		want bool
	}{
		{name: "pending to approved", from: ReviewStatusPending, to: ReviewStatusApproved, want: true},
		{name: "pending to rejected", from: ReviewStatusPending, to: ReviewStatusRejected, want: true},
		{name: "rejected to pending", from: ReviewStatusRejected, to: ReviewStatusPending, want: true},
		{name: "rejected to approved", from: ReviewStatusRejected, to: ReviewStatusApproved, want: false},
		{name: "approved is terminal", from: ReviewStatusApproved, to: ReviewStatusPending, want: false},
		{name: "approved to rejected", from: ReviewStatusApproved, to: ReviewStatusRejected, want: false},
		{name: "pending to pending", from: ReviewStatusPending, to: ReviewStatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestReviewStatus_Resubmit(t *testing.T) {
	assert.Equal(t, ReviewStatusPending, ReviewStatusPending.Resubmit())
	assert.Equal(t, ReviewStatusPending, ReviewStatusApproved.Resubmit())
	assert.Equal(t, ReviewStatusPending, ReviewStatusRejected.Resubmit())
}

func TestReviewStatus_Valid(t *testing.T) {
	assert.True(t, ReviewStatusPending.Valid())
	assert.True(t, ReviewStatusApproved.Valid())
	assert.True(t, ReviewStatusRejected.Valid())
	assert.False(t, ReviewStatus("archived").Valid())
}
