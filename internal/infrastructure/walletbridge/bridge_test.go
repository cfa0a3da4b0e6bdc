package walletbridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePage connects to the bridge endpoint and answers relayed calls the way
// the dashboard page would.
func newFakePage(t *testing.T, bridge *Bridge, answer func(method string, params json.RawMessage) (interface{}, string)) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		bridge.Attach(conn)
	}))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, bridge.Attached, time.Second, 10*time.Millisecond)

	go func() {
		for {
			req := struct {
				ID     string          `json:"id"`
				Method string          `json:"method"`
				Params json.RawMessage `json:"params"`
			}{}
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			result, errMsg := answer(req.Method, req.Params)
			raw, _ := json.Marshal(result)
			conn.WriteJSON(map[string]interface{}{
				"id":     req.ID,
				"result": json.RawMessage(raw),
				"error":  errMsg,
			})
		}
	}()

	return conn
}

func TestBridgeCalls(t *testing.T) {
	t.Run("should fail fast when no page is attached", func(t *testing.T) {
		bridge := NewBridge(time.Second)

		_, err := bridge.GetInstalledWallets(context.Background())
		assert.ErrorIs(t, err, ErrBridgeClosed)
	})

	t.Run("should relay discovery and enable", func(t *testing.T) {
		bridge := NewBridge(5 * time.Second)
		newFakePage(t, bridge, func(method string, params json.RawMessage) (interface{}, string) {
			switch method {
			case "getInstalledWallets":
				return []map[string]string{
					{"name": "nami", "icon": "icon://nami", "version": "1.0"},
				}, ""
			case "enable":
				return true, ""
			case "getLovelace":
				return "42000000", ""
			default:
				return nil, "unexpected method " + method
			}
		})

		wallets, err := bridge.GetInstalledWallets(context.Background())
		require.NoError(t, err)
		require.Len(t, wallets, 1)
		assert.Equal(t, "nami", wallets[0].Name)

		session, err := bridge.Enable(context.Background(), "nami")
		require.NoError(t, err)
		require.NotNil(t, session)

		lovelace, err := session.GetLovelace(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "42000000", lovelace)
	})

	t.Run("should return a nil session when the wallet declines", func(t *testing.T) {
		bridge := NewBridge(5 * time.Second)
		newFakePage(t, bridge, func(method string, _ json.RawMessage) (interface{}, string) {
			return false, ""
		})

		session, err := bridge.Enable(context.Background(), "nami")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("should surface page-side errors", func(t *testing.T) {
		bridge := NewBridge(5 * time.Second)
		newFakePage(t, bridge, func(method string, _ json.RawMessage) (interface{}, string) {
			return nil, "user rejected"
		})

		_, err := bridge.GetInstalledWallets(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "user rejected")
	})

	t.Run("should fail in-flight calls when the page disconnects", func(t *testing.T) {
		bridge := NewBridge(5 * time.Second)
		conn := newFakePage(t, bridge, func(method string, _ json.RawMessage) (interface{}, string) {
			return nil, ""
		})

		conn.Close()
		// Give the read loop a moment to observe the close.
		require.Eventually(t, func() bool {
			_, err := bridge.GetInstalledWallets(context.Background())
			return err != nil
		}, 2*time.Second, 50*time.Millisecond)
	})
}
