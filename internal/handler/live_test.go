package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/AlexGerus/dolf-charts/internal/model"
)

func TestLiveFeed_SnapshotOnConnectAndChange(t *testing.T) {
	r, st := newTestRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/scenarios/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial live feed: %v", err)
	}
	defer conn.Close()

	var snapshot struct {
		Scenarios []model.ScenarioData `json:"scenarios"`
	}

	readSnapshot := func() {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("failed to read snapshot: %v", err)
		}
		if err := json.Unmarshal(msg, &snapshot); err != nil {
			t.Fatalf("failed to decode snapshot: %v", err)
		}
	}

	// Initial snapshot is pushed right after the upgrade.
	readSnapshot()
	if len(snapshot.Scenarios) != 0 {
		t.Fatalf("expected empty initial snapshot, got %d scenarios", len(snapshot.Scenarios))
	}

	if err := st.Add(model.ScenarioData{Scenario: "live", Symbol: "BTC/USDT"}); err != nil {
		t.Fatalf("unexpected Add error: %v", err)
	}

	readSnapshot()
	if len(snapshot.Scenarios) != 1 || snapshot.Scenarios[0].Scenario != "live" {
		t.Errorf("expected snapshot with the added scenario, got %+v", snapshot.Scenarios)
	}
}
