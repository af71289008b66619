package model

// Display is what a weather panel renders for one city: either the three
// weather fields or a human readable error.
type Display struct {
	City        string `json:"city"`
	Temperature string `json:"temperature,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
	StatusCode  int    `json:"-"`

	Recommendation *Recommendation `json:"recommendation,omitempty"`
}

// Failed reports whether the display carries an error instead of weather data
func (d Display) Failed() bool {
	return d.Error != ""
}
