package display

import "testing"

func TestRecommendOutfitBands(t *testing.T) {
	cases := []struct {
		celsius float64
		outfit  string
		icon    string
	}{
		{-5, "🧥 Heavy winter coat, scarf, gloves, and warm boots", "🧥"},
		{0, "🧥 Warm jacket, long pants, and closed shoes", "🧥"},
		{9.9, "🧥 Warm jacket, long pants, and closed shoes", "🧥"},
		{10, "🧥 Light jacket or hoodie with jeans", "👔"},
		{15, "👕 Long sleeve shirt or light sweater", "👕"},
		{20, "👕 T-shirt and jeans or shorts", "👕"},
		{25, "👕 Light t-shirt and shorts", "🩳"},
		{30, "🩳 Tank top, shorts, and sandals", "🩳"},
		{42, "🩳 Tank top, shorts, and sandals", "🩳"},
	}
	for _, tc := range cases {
		got := Recommend(tc.celsius, 801, 0, 50)
		if got.Outfit != tc.outfit || got.Icon != tc.icon {
			t.Errorf("Recommend(%v) = %q/%q, want %q/%q", tc.celsius, got.Outfit, got.Icon, tc.outfit, tc.icon)
		}
	}
}

func TestRecommendUmbrella(t *testing.T) {
	cases := []struct {
		weatherID int
		needed    bool
		reason    string
	}{
		{211, true, "Rain expected"},
		{300, true, "Rain expected"},
		{599, true, "Rain expected"},
		{600, true, "Snow expected"},
		{699, true, "Snow expected"},
		{700, false, "No rain expected"},
		{800, false, "No rain expected"},
		{199, false, "No rain expected"},
	}
	for _, tc := range cases {
		got := Recommend(18, tc.weatherID, 0, 50).Umbrella
		if got.Needed != tc.needed || got.Reason != tc.reason {
			t.Errorf("weather %d: got %+v, want needed=%v reason=%q", tc.weatherID, got, tc.needed, tc.reason)
		}
	}
}

func TestRecommendAccessories(t *testing.T) {
	cases := []struct {
		name      string
		celsius   float64
		weatherID int
		wind      float64
		want      []string
	}{
		{name: "none", celsius: 18, weatherID: 801, wind: 2, want: nil},
		{name: "clear sky", celsius: 18, weatherID: 800, wind: 2, want: []string{"😎 Sunglasses"}},
		{name: "hot and clear", celsius: 31, weatherID: 800, wind: 2, want: []string{"😎 Sunglasses", "🧢 Hat"}},
		{name: "cold and windy", celsius: 4, weatherID: 803, wind: 7, want: []string{"🧣 Scarf"}},
		{name: "cold and calm", celsius: 4, weatherID: 803, wind: 5, want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Recommend(tc.celsius, tc.weatherID, tc.wind, 50).Accessories
			if got == nil {
				t.Fatal("accessories must be an empty list, not nil")
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %+v", tc.want, got)
			}
			for i, item := range tc.want {
				if got[i].Item != item {
					t.Fatalf("expected %v, got %+v", tc.want, got)
				}
			}
		})
	}
}

func TestRecommendComfortTip(t *testing.T) {
	cases := []struct {
		humidity int
		wind     float64
		want     string
	}{
		{85, 12, "💧 High humidity - dress in breathable fabrics"},
		{20, 12, "🌵 Low humidity - stay hydrated and moisturize"},
		{50, 12, "💨 Windy conditions - secure loose clothing"},
		{50, 3, "✨ Perfect conditions for outdoor activities!"},
	}
	for _, tc := range cases {
		if got := Recommend(18, 801, tc.wind, tc.humidity).ComfortTip; got != tc.want {
			t.Errorf("humidity %d wind %v: got %q, want %q", tc.humidity, tc.wind, got, tc.want)
		}
	}
}

func TestKelvinToCelsius(t *testing.T) {
	if got := KelvinToCelsius(273.15); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
