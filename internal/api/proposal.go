package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func proposalID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
}

func (s *Server) handleCreateProposal(w http.ResponseWriter, r *http.Request) {
	creator, err := callerAddress(r)
	if err != nil {
		writeError(w, badRequest(err.Error()))
		return
	}

	var req createProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, badRequest("invalid request body"))
		return
	}

	votingPeriod := s.cfg.Governance.VotingPeriod
	if req.VotingPeriod != nil {
		votingPeriod = *req.VotingPeriod
	}

	id, eErr := s.service.CreateProposal(r.Context(), creator, req.Title, req.Description, votingPeriod)
	if eErr != nil {
		writeError(w, eErr)
		return
	}

	writeJSON(w, http.StatusCreated, createProposalResponse{ProposalID: id})
}

func (s *Server) handleGetProposal(w http.ResponseWriter, r *http.Request) {
	id, err := proposalID(r)
	if err != nil {
		writeError(w, badRequest("invalid proposal id"))
		return
	}

	proposal, eErr := s.service.GetProposal(r.Context(), id)
	if eErr != nil {
		writeError(w, eErr)
		return
	}

	executable, currentHeight, eErr := s.service.IsExecutable(r.Context(), id)
	if eErr != nil {
		writeError(w, eErr)
		return
	}

	writeJSON(w, http.StatusOK, newProposalResponse(proposal, currentHeight, executable))
}

func (s *Server) handleExecuteProposal(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAddress(r)
	if err != nil {
		writeError(w, badRequest(err.Error()))
		return
	}

	id, err := proposalID(r)
	if err != nil {
		writeError(w, badRequest("invalid proposal id"))
		return
	}

	if eErr := s.service.ExecuteProposal(r.Context(), caller, id); eErr != nil {
		writeError(w, eErr)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "executed"})
}
