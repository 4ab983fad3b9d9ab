package scenario

import "github.com/AlexGerus/dolf-charts/internal/model"

// MaxRenderCandles is the series length above which candles are thinned
// before charting.
const MaxRenderCandles = 500

// downsampleStride keeps every Nth candle of an oversized series.
const downsampleStride = 5

// OptimizeCandles bounds a candle series for render performance. Series of
// MaxRenderCandles or fewer are returned as-is; longer series keep every 5th
// candle starting at index 0, so the result holds ceil(n/5) candles.
//
// This is stride sampling, not aggregation: skipped candles are dropped, not
// folded into their neighbours. Dense series lose visual fidelity but the
// chart stays responsive. The input is never mutated.
func OptimizeCandles(candles []model.Candle) []model.Candle {
	if len(candles) <= MaxRenderCandles {
		return candles
	}

	optimized := make([]model.Candle, 0, (len(candles)+downsampleStride-1)/downsampleStride)
	for i := 0; i < len(candles); i += downsampleStride {
		optimized = append(optimized, candles[i])
	}
	return optimized
}
