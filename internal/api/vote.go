package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stakegov/governance-engine/pkg"
)

func (s *Server) handleCastVote(w http.ResponseWriter, r *http.Request) {
	voter, err := callerAddress(r)
	if err != nil {
		writeError(w, badRequest(err.Error()))
		return
	}

	id, err := proposalID(r)
	if err != nil {
		writeError(w, badRequest("invalid proposal id"))
		return
	}

	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, badRequest("invalid request body"))
		return
	}
	if req.Support == nil {
		writeError(w, badRequest("support is required"))
		return
	}

	if eErr := s.service.CastVote(r.Context(), voter, id, *req.Support); eErr != nil {
		writeError(w, eErr)
		return
	}

	vote, eErr := s.service.GetVote(r.Context(), id, voter)
	if eErr != nil {
		writeError(w, eErr)
		return
	}

	writeJSON(w, http.StatusCreated, newVoteResponse(vote))
}

func (s *Server) handleGetVote(w http.ResponseWriter, r *http.Request) {
	id, err := proposalID(r)
	if err != nil {
		writeError(w, badRequest("invalid proposal id"))
		return
	}

	address := chi.URLParam(r, "address")
	if err := pkg.ValidateStakerAddress(address); err != nil {
		writeError(w, badRequest(err.Error()))
		return
	}

	vote, eErr := s.service.GetVote(r.Context(), id, address)
	if eErr != nil {
		writeError(w, eErr)
		return
	}

	writeJSON(w, http.StatusOK, newVoteResponse(vote))
}

func (s *Server) handleGetVotes(w http.ResponseWriter, r *http.Request) {
	id, err := proposalID(r)
	if err != nil {
		writeError(w, badRequest("invalid proposal id"))
		return
	}

	votes, eErr := s.service.GetVotes(r.Context(), id)
	if eErr != nil {
		writeError(w, eErr)
		return
	}

	resp := make([]voteResponse, 0, len(votes))
	for _, v := range votes {
		resp = append(resp, newVoteResponse(v))
	}
	writeJSON(w, http.StatusOK, resp)
}
