package domain

// Recipe is one catalog entry. The catalog is a fixed in-memory list, so
// recipes carry no persistence metadata.
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Minutes     int      `json:"minutes"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}
