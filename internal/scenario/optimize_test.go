package scenario

import (
	"testing"

	"github.com/AlexGerus/dolf-charts/internal/model"
)

func makeCandles(n int) []model.Candle {
	candles := make([]model.Candle, n)
	for i := range candles {
		candles[i] = model.Candle{
			Timestamp: int64(1700000000000 + i*60000),
			Price:     model.OHLC{Open: float64(i), Close: float64(i) + 1},
			Volume:    float64(i),
		}
	}
	return candles
}

func TestOptimizeCandles_IdentityUnderLimit(t *testing.T) {
	for _, n := range []int{0, 1, 499, 500} {
		candles := makeCandles(n)
		got := OptimizeCandles(candles)
		if len(got) != n {
			t.Errorf("n=%d: expected identity, got %d candles", n, len(got))
		}
	}
}

func TestOptimizeCandles_StrideSampling(t *testing.T) {
	tests := []struct {
		n       int
		wantLen int
	}{
		{501, 101}, // ceil(501/5)
		{1000, 200},
		{1003, 201},
	}

	for _, tt := range tests {
		candles := makeCandles(tt.n)
		got := OptimizeCandles(candles)
		if len(got) != tt.wantLen {
			t.Errorf("n=%d: expected %d candles, got %d", tt.n, tt.wantLen, len(got))
		}
	}
}

func TestOptimizeCandles_KeepsEveryFifth(t *testing.T) {
	candles := makeCandles(1000)
	got := OptimizeCandles(candles)

	if got[0].Timestamp != candles[0].Timestamp {
		t.Error("expected first candle to be kept")
	}
	if got[1].Timestamp != candles[5].Timestamp {
		t.Errorf("expected result[1] == input[5], got timestamp %d", got[1].Timestamp)
	}
	if got[199].Timestamp != candles[995].Timestamp {
		t.Errorf("expected result[199] == input[995], got timestamp %d", got[199].Timestamp)
	}
}

func TestOptimizeCandles_InputUntouched(t *testing.T) {
	candles := makeCandles(1000)
	before := candles[3]
	OptimizeCandles(candles)
	if candles[3] != before {
		t.Error("expected input slice to stay unmodified")
	}
	if len(candles) != 1000 {
		t.Errorf("expected input length 1000, got %d", len(candles))
	}
}
