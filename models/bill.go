package models

// BillLine is one itemized entry on a bill.
type BillLine struct {
	Description string `json:"description"`
	Amount      int    `json:"amount"`
}

// Bill is the aggregated statement for one guest identity. It is computed on
// demand and never persisted. Zero-total categories carry no items, so the
// caller can suppress those sections. Warnings lists ledgers that could not be
// read; their categories contribute zero instead of failing the whole bill.
type Bill struct {
	RoomTotal         int        `json:"roomTotal"`
	RoomItems         []BillLine `json:"roomItems,omitempty"`
	FoodTotal         int        `json:"foodTotal"`
	FoodItems         []BillLine `json:"foodItems,omitempty"`
	ServicesTotal     int        `json:"servicesTotal"`
	ServiceItems      []BillLine `json:"serviceItems,omitempty"`
	HousekeepingTotal int        `json:"housekeepingTotal"`
	HousekeepingItems []BillLine `json:"housekeepingItems,omitempty"`
	GrandTotal        int        `json:"grandTotal"`

	Warnings []string `json:"warnings,omitempty"`
}
