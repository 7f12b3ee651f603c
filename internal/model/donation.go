package model

import "time"

// DefaultDonorName is used when a donor leaves the name blank
const DefaultDonorName = "Anonymous Patriot"

// Donation is one entry on the donations wall
type Donation struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Amount int            `json:"amount"` // KES
	Tier   MembershipTier `json:"tier"`
	Date   time.Time      `json:"date"`
}

// DonorTierFor classifies a donation amount
func DonorTierFor(amount int) MembershipTier {
	switch {
	case amount >= 10000:
		return TierPlatinum
	case amount >= 2000:
		return TierGold
	case amount >= 500:
		return TierSilver
	default:
		return TierBronze
	}
}
