package model

import "strings"

// MembershipTier is a purchasable membership level
type MembershipTier string

const (
	TierBronze   MembershipTier = "Bronze"
	TierSilver   MembershipTier = "Silver"
	TierGold     MembershipTier = "Gold"
	TierPlatinum MembershipTier = "Platinum"
)

// TierOffer describes a tier on sale
type TierOffer struct {
	Tier     MembershipTier `json:"tier"`
	PriceKES int            `json:"price"` // per month
	Benefits []string       `json:"benefits"`
}

// TierCatalogue returns the tiers on sale, cheapest first
func TierCatalogue() []TierOffer {
	return []TierOffer{
		{
			Tier:     TierBronze,
			PriceKES: 199,
			Benefits: []string{"Verified Player Badge", "Basic Match Analytics", "Ward Level Recognition"},
		},
		{
			Tier:     TierSilver,
			PriceKES: 499,
			Benefits: []string{"Bronze Benefits", "Priority Match Validation", "Custom Profile Banner", "Exclusive Discord Role"},
		},
		{
			Tier:     TierGold,
			PriceKES: 999,
			Benefits: []string{"Silver Benefits", "Featured on Ward Table", "Direct Admin Support", "Early Access to Events"},
		},
		{
			Tier:     TierPlatinum,
			PriceKES: 1999,
			Benefits: []string{"Gold Benefits", "Global Feature Spot", "VIP Tournament Entry", "Exclusive Merch Access"},
		},
	}
}

// ParseTier resolves a tier name, ignoring case
func ParseTier(s string) (MembershipTier, error) {
	for _, offer := range TierCatalogue() {
		if strings.EqualFold(string(offer.Tier), strings.TrimSpace(s)) {
			return offer.Tier, nil
		}
	}
	return "", ErrUnknownTier
}
