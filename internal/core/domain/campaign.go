package domain

// CampaignSpec describes one advertiser entering the simulated auctions.
// PCTR and BaseBid are scenario constants; Budget is the total spend the
// campaign is allowed to pace across the whole horizon.
type CampaignSpec struct {
	Name    string  `json:"name"`
	PCTR    float64 `json:"pctr"`
	BaseBid float64 `json:"base_bid"`
	Budget  float64 `json:"budget"`
}

// Campaign is the per-run mutable state of a campaign. Spend only grows and
// ErrorHistory receives exactly one entry per simulated minute.
type Campaign struct {
	CampaignSpec
	Spend        float64   `json:"spend"`
	ErrorHistory []float64 `json:"error_history,omitempty"`
}

// NewCampaign returns zeroed run state for spec with room for horizon
// pacing-error observations.
func NewCampaign(spec CampaignSpec, horizon int) *Campaign {
	return &Campaign{
		CampaignSpec: spec,
		ErrorHistory: make([]float64, 0, horizon),
	}
}

// ExpectedSpend is the linear pacing target at minute: budget * minute / horizon.
func (c CampaignSpec) ExpectedSpend(minute, horizon int) float64 {
	if horizon <= 0 {
		return 0
	}
	return c.Budget * float64(minute) / float64(horizon)
}
