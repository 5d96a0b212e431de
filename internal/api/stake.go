package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stakegov/governance-engine/pkg"
)

const stakerAddressHeader = "X-Staker-Address"

// callerAddress extracts and validates the caller identity injected by the
// upstream auth proxy.
func callerAddress(r *http.Request) (string, error) {
	address := r.Header.Get(stakerAddressHeader)
	if err := pkg.ValidateStakerAddress(address); err != nil {
		return "", err
	}
	return address, nil
}

func (s *Server) handleCommitStake(w http.ResponseWriter, r *http.Request) {
	staker, err := callerAddress(r)
	if err != nil {
		writeError(w, badRequest(err.Error()))
		return
	}

	var req commitStakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, badRequest("invalid request body"))
		return
	}

	newTotal, eErr := s.service.CommitStake(r.Context(), staker, req.Amount)
	if eErr != nil {
		writeError(w, eErr)
		return
	}

	writeJSON(w, http.StatusOK, commitStakeResponse{
		Staker:       staker,
		StakedAmount: newTotal,
	})
}

func (s *Server) handleGetStake(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	if err := pkg.ValidateStakerAddress(address); err != nil {
		writeError(w, badRequest(err.Error()))
		return
	}

	amount, eErr := s.service.GetStakedAmount(r.Context(), address)
	if eErr != nil {
		writeError(w, eErr)
		return
	}

	writeJSON(w, http.StatusOK, stakeResponse{
		Staker:       address,
		StakedAmount: amount,
	})
}

func (s *Server) handleGetTotalStaked(w http.ResponseWriter, r *http.Request) {
	totalStaked, eErr := s.service.GetTotalStaked(r.Context())
	if eErr != nil {
		writeError(w, eErr)
		return
	}

	writeJSON(w, http.StatusOK, totalStakedResponse{TotalStaked: totalStaked})
}
