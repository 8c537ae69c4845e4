package catalog

import "roas-calculator/core/types"

// DefaultTiers returns the built-in Bronze/Silver/Gold/Prime tiers
func DefaultTiers() []types.Tier {
	return []types.Tier{
		{
			Key: "bronze", Name: "Bronze", Tagline: "Starter",
			MonthlyFee: 450, OnboardingFee: 200, SpendCap: 1000,
			Features: []string{
				"2 channels; 4 posts + 4 stories/mo",
				"1 ad campaign (Meta or Google), budget ≤ €1,000",
				"GA4/Tags + UTMs",
				"1-page monthly report + 30-min call",
				"Light brand polish; 1-day SLA",
			},
		},
		{
			Key: "silver", Name: "Silver", Tagline: "Growth",
			MonthlyFee: 650, OnboardingFee: 250, SpendCap: 2500,
			Features: []string{
				"Up to 3 channels; 8 posts + 8 stories/mo",
				"2 ad campaigns; budget ≤ €2,500",
				"Live Looker Studio dashboard",
				"1 landing-page refresh OR on-page SEO/mo",
				"1 A/B test/mo; 8h SLA",
			},
		},
		{
			Key: "gold", Name: "Gold", Tagline: "Performance",
			MonthlyFee: 900, OnboardingFee: 300, SpendCap: 5000,
			Features: []string{
				"Up to 4 channels; 12 posts + 2 Reels/mo",
				"3–4 campaigns across Meta/Google/LinkedIn; budget ≤ €5,000",
				"ROI & funnel dashboard; email/nurture",
				"2 CRO/SEO tests/mo; QBR",
				"4h consulting/mo; 4h SLA",
			},
		},
		{
			Key: "prime", Name: "Prime", Tagline: "Scale",
			MonthlyFee: 1150, OnboardingFee: 350, SpendCap: 10000,
			Features: []string{
				"4+ channels; 16 posts + 4 Reels/mo",
				"Always-on + promos; budget ≤ €10,000",
				"Full KPI stack + attribution view",
				"Automation & lead scoring; growth playbook",
				"8h consulting/mo; priority support",
			},
		},
	}
}

// Default returns the built-in catalog
func Default() *Catalog {
	return MustNew(DefaultTiers()...)
}
