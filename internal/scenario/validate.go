package scenario

// Validate reports whether a decoded JSON value conforms to the scenario
// shape. Rules are checked in order and the first failure wins.
//
// Only the first candle is inspected. Later candles with a broken shape slip
// through here and surface as rendering glitches instead; the chart layer
// tolerates that, so the check stays shallow.
func Validate(data any) bool {
	obj, ok := data.(map[string]any)
	if !ok || obj == nil {
		return false
	}

	// Required fields must be present and truthy (empty string, 0 and nil
	// all fail).
	for _, key := range []string{"scenario", "description", "symbol", "candles", "statistics"} {
		if !truthy(obj[key]) {
			return false
		}
	}

	candles, ok := obj["candles"].([]any)
	if !ok || len(candles) == 0 {
		return false
	}

	first, ok := candles[0].(map[string]any)
	if !ok {
		return false
	}
	for _, key := range []string{"timestamp", "price", "openInterest", "volume"} {
		if !truthy(first[key]) {
			return false
		}
	}

	stats, ok := obj["statistics"].(map[string]any)
	if !ok {
		return false
	}
	// Type check only for these three: zero is a legal value.
	for _, key := range []string{"totalCandles", "priceStart", "priceEnd"} {
		if _, ok := stats[key].(float64); !ok {
			return false
		}
	}

	return true
}

// truthy mirrors JavaScript truthiness for the value kinds encoding/json
// produces: nil, false, 0 and "" are falsy, everything else is truthy.
// Empty arrays and objects are truthy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
