package model

// Recommendation tells what to wear for the current conditions
type Recommendation struct {
	Outfit      string      `json:"outfit"`
	Layers      string      `json:"layers"`
	Icon        string      `json:"icon"`
	Umbrella    Umbrella    `json:"umbrella"`
	Accessories []Accessory `json:"accessories"`
	ComfortTip  string      `json:"comfortTip"`
}

type Umbrella struct {
	Needed bool   `json:"needed"`
	Reason string `json:"reason"`
	Icon   string `json:"icon"`
}

type Accessory struct {
	Item   string `json:"item"`
	Reason string `json:"reason"`
}
