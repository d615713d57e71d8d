// Package constants holds shared domain-level constant values.
package constants

// Platform roles carried in JWT claims and enforced by the auth middleware.
const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleAffiliate = "affiliate"
	RoleSchool    = "school"
	RoleBusiness  = "business"
)

// Pub/Sub provider selectors for the event publisher.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Entity type discriminators used by the filing module to attach uploads.
const (
	EntityTypeAdvert   = "advert"
	EntityTypeListing  = "listing"
	EntityTypeCompany  = "company"
	EntityTypeLearner  = "learner"
	EntityTypeStaff    = "staff"
	EntityTypeMessage  = "message"
	EntityTypeSchool   = "school"
	EntityTypeActivity = "activity_group"
)
