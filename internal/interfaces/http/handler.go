package httpinterface

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/stakedash/stakedash-daemon/internal/core/application"
	"github.com/stakedash/stakedash-daemon/internal/core/domain"
	"github.com/stakedash/stakedash-daemon/internal/infrastructure/walletbridge"
	"github.com/stakedash/stakedash-daemon/pkg/fmtutil"
)

// Service exposes the dashboard operations as an HTTP JSON API and hosts the
// wallet-bridge WebSocket endpoint.
type Service struct {
	sessions application.SessionService
	balance  application.BalanceService
	stake    application.StakeService
	history  application.HistoryService
	pools    application.PoolService
	bridge   *walletbridge.Bridge

	historyPageSize int
	upgrader        websocket.Upgrader
}

func NewService(
	sessions application.SessionService,
	balance application.BalanceService,
	stake application.StakeService,
	history application.HistoryService,
	pools application.PoolService,
	bridge *walletbridge.Bridge,
	historyPageSize int,
) *Service {
	return &Service{
		sessions:        sessions,
		balance:         balance,
		stake:           stake,
		history:         history,
		pools:           pools,
		bridge:          bridge,
		historyPageSize: historyPageSize,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Routes returns the mux serving the dashboard API.
func (s *Service) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/providers", s.providersHandler)
	mux.HandleFunc("/v1/session", s.sessionHandler)
	mux.HandleFunc("/v1/balance", s.balanceHandler)
	mux.HandleFunc("/v1/pools", s.poolsHandler)
	mux.HandleFunc("/v1/stake", s.stakeHandler)
	mux.HandleFunc("/v1/history", s.historyHandler)
	mux.HandleFunc("/v1/delegations", s.delegationsHandler)
	mux.HandleFunc("/v1/ws", s.bridgeHandler)
	return mux
}

func (s *Service) providersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	providers, err := s.sessions.ListProviders(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"providers": providers})
}

type connectRequest struct {
	Provider string `json:"provider"`
}

func (s *Service) sessionHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		req := connectRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Provider == "" {
			writeError(w, http.StatusBadRequest, errors.New("missing provider name"))
			return
		}

		session, err := s.sessions.Connect(r.Context(), req.Provider)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		// A fresh wallet session starts from a fresh pool directory view.
		s.pools.Reset()

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":             session.ID,
			"provider":       session.Provider,
			"networkId":      session.NetworkID,
			"network":        domain.NetworkName(session.NetworkID),
			"address":        session.Address(),
			"displayAddress": fmtutil.TruncateAddress(session.Address(), 12, 6),
		})
	case http.MethodDelete:
		if err := s.sessions.Disconnect(r.Context()); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"disconnected": true})
	default:
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	}
}

func (s *Service) balanceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"balance": s.balance.GetBalance(r.Context()),
	})
}

func (s *Service) poolsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	pools, err := s.pools.Filter(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"pools": pools})
}

type stakeRequest struct {
	PoolID string `json:"poolId"`
	Amount string `json:"amount"`
}

func (s *Service) stakeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	req := stakeRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	result, err := s.stake.Stake(r.Context(), req.PoolID, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Service) historyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))
	if count <= 0 {
		count = s.historyPageSize
	}

	result, err := s.history.Transactions(r.Context(), page, count)
	if err != nil {
		if errors.Is(err, application.ErrStalePage) {
			// A newer page request superseded this one; nothing to render.
			writeJSON(w, http.StatusOK, map[string]interface{}{"stale": true})
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Service) delegationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	records, err := s.history.Delegations(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveSession) {
			writeDomainError(w, err)
			return
		}
		// Delegation failures are advisory: the dashboard still renders.
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"delegations": records,
			"warning":     err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"delegations": records})
}

func (s *Service) bridgeHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("wallet bridge upgrade failed")
		return
	}
	s.bridge.Attach(conn)
}
