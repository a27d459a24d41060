package domain

import "time"

type AlertCategory string

const (
	CategoryPowerOfSale            AlertCategory = "POWER_OF_SALE"
	CategoryEstateSale             AlertCategory = "ESTATE_SALE"
	CategoryDevelopmentApplication AlertCategory = "DEVELOPMENT_APPLICATION"
	CategoryLienClaim              AlertCategory = "LIEN_CLAIM"
)

type AlertStatus string

const (
	AlertStatusActive   AlertStatus = "ACTIVE"
	AlertStatusResolved AlertStatus = "RESOLVED"
	AlertStatusExpired  AlertStatus = "EXPIRED"
)

type AlertPriority string

const (
	PriorityHigh   AlertPriority = "HIGH"
	PriorityMedium AlertPriority = "MEDIUM"
	PriorityLow    AlertPriority = "LOW"
)

// Alert is a derived opportunity record generated from a relevant Filing.
// At most one Alert exists per Filing.
type Alert struct {
	ID               int64
	FilingID         int64
	Title            string
	Description      string
	Address          string // best effort, placeholder until reviewed
	City             string
	Province         string
	Category         AlertCategory
	Status           AlertStatus
	Priority         AlertPriority
	OpportunityScore int // always within [60,100]
	TimelineMonths   int // always within [3,9]
	CreatedAt        time.Time
}
