// Package chart maps stored candle series into the point arrays the chart
// renderer consumes. The renderer owns all zoom/pan/tooltip behaviour; this
// package only shapes the data.
package chart

import (
	"time"

	"github.com/AlexGerus/dolf-charts/internal/model"
)

// PriceSeries builds the price chart points for a candle series, in candle
// order. Timestamps are epoch milliseconds in the upload format.
func PriceSeries(candles []model.Candle) []model.PricePoint {
	points := make([]model.PricePoint, 0, len(candles))
	for _, c := range candles {
		points = append(points, model.PricePoint{
			Date:   time.UnixMilli(c.Timestamp),
			Open:   c.Price.Open,
			High:   c.Price.High,
			Low:    c.Price.Low,
			Close:  c.Price.Close,
			Volume: c.Volume,
		})
	}
	return points
}

// OISeries builds the open-interest chart points for a candle series.
func OISeries(candles []model.Candle) []model.OIPoint {
	points := make([]model.OIPoint, 0, len(candles))
	for _, c := range candles {
		points = append(points, model.OIPoint{
			Date:  time.UnixMilli(c.Timestamp),
			Open:  c.OpenInterest.Open,
			High:  c.OpenInterest.High,
			Low:   c.OpenInterest.Low,
			Close: c.OpenInterest.Close,
		})
	}
	return points
}
