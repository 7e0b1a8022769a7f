package models

// WeatherReading is a current-conditions snapshot. Readings are computed per
// request and never persisted.
type WeatherReading struct {
	Temperature float64  `json:"temperature"`
	Condition   string   `json:"condition"`
	Location    string   `json:"location"`
	Humidity    *int     `json:"humidity,omitempty"`
	FeelsLike   *float64 `json:"feels_like,omitempty"`
}

// NewsItem is one entry of the mock news feed.
type NewsItem struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	Time   string `json:"time"`
}
