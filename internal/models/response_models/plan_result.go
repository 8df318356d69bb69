package response_models

// PlanResult is the aggregate the planning API returns for one trip
// request. Trips spanning several countries carry one entry per
// destination in Local, Currencies and Safety; a single-destination
// trip is simply the length-1 case.
type PlanResult struct {
	Visa       string                `json:"visa"`
	Budget     Budget                `json:"budget"`
	Local      []DestinationTools    `json:"local"`
	Currencies []DestinationCurrency `json:"currencies"`
	Safety     []DestinationSafety   `json:"safety"`
	Mini       []string              `json:"mini"`
}

// Budget keeps the breakdown as a map so the API can add or rename
// categories (older plans say "stay", newer ones "miscellaneous")
// without breaking decoding.
type Budget struct {
	TotalUSD  float64            `json:"totalUSD"`
	PerDayUSD float64            `json:"perDayUSD"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// DestinationTools lists recommended applications per category
// (transportation, lodging, communication, ...) plus eSIM providers
// for one destination.
type DestinationTools struct {
	Destination string              `json:"destination"`
	Apps        map[string][]string `json:"apps"`
	ESIM        []string            `json:"eSIM"`
}

type DestinationCurrency struct {
	Destination   string   `json:"destination"`
	LocalCurrency string   `json:"localCurrency"`
	ExchangeRate  float64  `json:"exchangeRate"`
	ExchangeTips  []string `json:"exchangeTips"`
}

type EmergencyNumbers struct {
	Police        int `json:"police"`
	AmbulanceFire int `json:"ambulanceFire"`
}

// DestinationSafety carries one destination's safety advice.
// ScamsAndReviews and TravelInsurance may contain markup.
type DestinationSafety struct {
	Destination      string           `json:"destination"`
	GeneralSafety    string           `json:"generalSafety"`
	ScamsAndReviews  string           `json:"scamsAndReviews"`
	EmergencyNumbers EmergencyNumbers `json:"emergencyNumbers"`
	TravelInsurance  string           `json:"travelInsurance"`
}
