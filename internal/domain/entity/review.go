package entity

// ReviewStatus tracks moderation state for adverts and business listings.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// Valid reports whether s is a known review status.
func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}

	return false
}

// CanTransition reports whether a moderator-driven status change is
// allowed. Pending content may be approved or rejected; rejected content
// may be resubmitted for review; approved is terminal for moderators.
// Owner edits follow Resubmit instead.
func (s ReviewStatus) CanTransition(to ReviewStatus) bool {
	switch s {
	case ReviewStatusPending:
		return to == ReviewStatusApproved || to == ReviewStatusRejected
	case ReviewStatusRejected:
		return to == ReviewStatusPending
	}

	return false
}

// Resubmit is the status content takes when its owner edits it. Edited
// content always returns to moderation, even when previously approved.
func (s ReviewStatus) Resubmit() ReviewStatus {
	return ReviewStatusPending
}
