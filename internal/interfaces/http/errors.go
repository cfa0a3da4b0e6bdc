package httpinterface

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/stakedash/stakedash-daemon/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warn("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeDomainError maps the error taxonomy onto HTTP statuses: validation
// failures are client errors, provider failures are upstream errors.
func writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrBelowMinimumAmount),
		errors.Is(err, domain.ErrPoolNotInDirectory):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNoActiveSession):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSubmissionInFlight):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrConnectionDenied),
		errors.Is(err, domain.ErrAttestationFailed):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrProviderDiscovery),
		errors.Is(err, domain.ErrIncompleteWalletInfo),
		errors.Is(err, domain.ErrHistoryFetch),
		errors.Is(err, domain.ErrPoolFetch),
		errors.Is(err, domain.ErrSubmissionFailed):
		status = http.StatusBadGateway
	}

	writeError(w, status, err)
}
