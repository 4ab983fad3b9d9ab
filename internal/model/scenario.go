package model

// OHLC is one open/high/low/close sample. The same shape is used for both the
// price series and the open-interest series of a candle.
type OHLC struct {
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// Candle is one time bucket of market activity as it appears in an uploaded
// scenario file. Timestamp is epoch milliseconds; TimeFormatted is a display
// string and carries no logic.
type Candle struct {
	Timestamp     int64   `json:"timestamp"`
	TimeFormatted string  `json:"timeFormatted"`
	Price         OHLC    `json:"price"`
	OpenInterest  OHLC    `json:"openInterest"`
	Volume        float64 `json:"volume"`
	Turnover      float64 `json:"turnover"`
}

// Statistics is the precomputed summary shipped inside a scenario file.
// Values are taken verbatim from the upload and are not recomputed from the
// candle series.
type Statistics struct {
	TotalCandles       float64 `json:"totalCandles"`
	PriceStart         float64 `json:"priceStart"`
	PriceEnd           float64 `json:"priceEnd"`
	PriceChangePercent float64 `json:"priceChangePercent"`
	OiStart            float64 `json:"oiStart"`
	OiEnd              float64 `json:"oiEnd"`
	OiChangePercent    float64 `json:"oiChangePercent"`
	VolatilityPercent  float64 `json:"volatilityPercent"`
	AvgVolume          float64 `json:"avgVolume"`
	MinVolume          float64 `json:"minVolume"`
	MaxVolume          float64 `json:"maxVolume"`
}

// ScenarioData is one complete uploaded dataset. Candles are ordered by
// non-decreasing timestamp and are treated as immutable once the scenario
// enters the store.
type ScenarioData struct {
	Scenario    string     `json:"scenario"`
	Description string     `json:"description"`
	Symbol      string     `json:"symbol"`
	Candles     []Candle   `json:"candles"`
	Statistics  Statistics `json:"statistics"`
}
