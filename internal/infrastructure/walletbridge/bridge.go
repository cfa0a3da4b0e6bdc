package walletbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/stakedash/stakedash-daemon/internal/core/domain"
	"github.com/stakedash/stakedash-daemon/internal/core/ports"
)

// ErrBridgeClosed is returned for any capability call issued while no browser
// page is attached to the bridge.
var ErrBridgeClosed = errors.New("wallet bridge is not connected")

type request struct {
	ID     string      `json:"id"`
	Method string      `json:"method"`
	Params interface{} `json:"params,omitempty"`
}

type response struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error,omitempty"`
}

// Bridge relays wallet capability calls to the dashboard page over a single
// WebSocket connection. The page answers each call by forwarding it to the
// wallet extension installed in the browser. One connection is active per
// tab; attaching a new one replaces the previous.
type Bridge struct {
	callTimeout time.Duration

	mtx      sync.Mutex
	conn     *websocket.Conn
	writeMtx sync.Mutex
	pending  map[string]chan response
}

func NewBridge(callTimeout time.Duration) *Bridge {
	return &Bridge{
		callTimeout: callTimeout,
		pending:     make(map[string]chan response),
	}
}

// Attach binds a freshly upgraded connection to the bridge and starts reading
// responses from it. Any previous connection is closed and its in-flight
// calls fail with ErrBridgeClosed.
func (b *Bridge) Attach(conn *websocket.Conn) {
	b.mtx.Lock()
	old := b.conn
	b.conn = conn
	b.failPendingLocked()
	b.mtx.Unlock()

	if old != nil {
		old.Close()
	}

	log.Info("wallet bridge attached")
	go b.readLoop(conn)
}

// Attached reports whether a page is currently connected to the bridge.
func (b *Bridge) Attached() bool {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.conn != nil
}

func (b *Bridge) readLoop(conn *websocket.Conn) {
	for {
		resp := response{}
		if err := conn.ReadJSON(&resp); err != nil {
			b.detach(conn)
			return
		}

		b.mtx.Lock()
		ch, ok := b.pending[resp.ID]
		if ok {
			delete(b.pending, resp.ID)
		}
		b.mtx.Unlock()

		if ok {
			ch <- resp
		}
	}
}

func (b *Bridge) detach(conn *websocket.Conn) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	// A newer connection may already have replaced this one.
	if b.conn != conn {
		return
	}
	b.conn = nil
	b.failPendingLocked()
	log.Info("wallet bridge detached")
}

func (b *Bridge) failPendingLocked() {
	for id, ch := range b.pending {
		delete(b.pending, id)
		close(ch)
	}
}

func (b *Bridge) call(
	ctx context.Context, method string, params, out interface{},
) error {
	b.mtx.Lock()
	conn := b.conn
	if conn == nil {
		b.mtx.Unlock()
		return ErrBridgeClosed
	}

	id := uuid.NewString()
	ch := make(chan response, 1)
	b.pending[id] = ch
	b.mtx.Unlock()

	b.writeMtx.Lock()
	err := conn.WriteJSON(request{ID: id, Method: method, Params: params})
	b.writeMtx.Unlock()
	if err != nil {
		b.mtx.Lock()
		delete(b.pending, id)
		b.mtx.Unlock()
		return fmt.Errorf("%w: %v", ErrBridgeClosed, err)
	}

	timeout := time.NewTimer(b.callTimeout)
	defer timeout.Stop()

	select {
	case <-ctx.Done():
		b.abandon(id)
		return ctx.Err()
	case <-timeout.C:
		b.abandon(id)
		return fmt.Errorf("wallet call %s timed out", method)
	case resp, ok := <-ch:
		if !ok {
			return ErrBridgeClosed
		}
		if resp.Error != "" {
			return errors.New(resp.Error)
		}
		if out == nil {
			return nil
		}
		return json.Unmarshal(resp.Result, out)
	}
}

func (b *Bridge) abandon(id string) {
	b.mtx.Lock()
	delete(b.pending, id)
	b.mtx.Unlock()
}

// GetInstalledWallets implements ports.WalletGateway.
func (b *Bridge) GetInstalledWallets(ctx context.Context) ([]domain.WalletInfo, error) {
	wallets := []domain.WalletInfo{}
	if err := b.call(ctx, "getInstalledWallets", nil, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

// Enable implements ports.WalletGateway.
func (b *Bridge) Enable(ctx context.Context, name string) (ports.WalletSession, error) {
	enabled := false
	params := map[string]string{"wallet": name}
	if err := b.call(ctx, "enable", params, &enabled); err != nil {
		return nil, err
	}
	if !enabled {
		return nil, nil
	}
	return &session{bridge: b}, nil
}

var _ ports.WalletGateway = (*Bridge)(nil)
