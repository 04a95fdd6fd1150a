package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/types"
)

// AdminAPIKeyHeader authenticates batch distribution requests. The ledger
// additionally authorizes the acting identity against the configured
// administrator address.
const AdminAPIKeyHeader = "X-Admin-Api-Key"

const defaultSettlementsLimit = 50

type depositRequest struct {
	StakerAddress string `json:"staker_address"`
	Amount        uint64 `json:"amount"`
}

type stakerRequest struct {
	StakerAddress string `json:"staker_address"`
}

type distributeRequest struct {
	ActorAddress string `json:"actor_address"`
}

type claimResponse struct {
	StakerAddress string `json:"staker_address"`
	Amount        uint64 `json:"amount"`
}

type distributeResponse struct {
	Processed int `json:"processed"`
}

type settlementResponse struct {
	ID            string `json:"id"`
	StakerAddress string `json:"staker_address"`
	Amount        uint64 `json:"amount"`
	Tick          uint64 `json:"tick"`
	CreatedAt     int64  `json:"created_at"`
}

type ledgerResponse struct {
	TotalStake    uint64 `json:"total_stake"`
	RewardPerTick uint64 `json:"reward_per_tick"`
	Stakers       int    `json:"stakers"`
	CurrentTick   uint64 `json:"current_tick"`
}

func (s *Server) requireAdminKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(AdminAPIKeyHeader) != s.cfg.AdminAPIKey {
			writeError(w, types.NewError(
				http.StatusUnauthorized,
				types.Unauthorized,
				errors.New("missing or invalid admin api key"),
			))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.StakerAddress == "" {
		writeError(w, types.NewValidationFailedError(errors.New("staker_address is required")))
		return
	}

	view, err := s.service.Deposit(r.Context(), req.StakerAddress, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	var req stakerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.StakerAddress == "" {
		writeError(w, types.NewValidationFailedError(errors.New("staker_address is required")))
		return
	}

	view, err := s.service.Withdraw(r.Context(), req.StakerAddress)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	var req stakerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.StakerAddress == "" {
		writeError(w, types.NewValidationFailedError(errors.New("staker_address is required")))
		return
	}

	amount, err := s.service.Claim(r.Context(), req.StakerAddress)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, claimResponse{
		StakerAddress: req.StakerAddress,
		Amount:        amount,
	})
}

func (s *Server) handleDistribute(w http.ResponseWriter, r *http.Request) {
	var req distributeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	processed, err := s.service.DistributeAll(r.Context(), req.ActorAddress)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, distributeResponse{Processed: processed})
}

func (s *Server) handleGetLedger(w http.ResponseWriter, r *http.Request) {
	view, tick := s.service.GetLedger(r.Context())
	writeJSON(w, http.StatusOK, ledgerResponse{
		TotalStake:    view.TotalStake,
		RewardPerTick: view.RewardPerTick,
		Stakers:       view.Stakers,
		CurrentTick:   tick,
	})
}

func (s *Server) handleGetStaker(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	view, err := s.service.GetStaker(r.Context(), address)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleGetSettlements(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	settlements, err := s.service.GetSettlements(r.Context(), address, defaultSettlementsLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]settlementResponse, 0, len(settlements))
	for _, doc := range settlements {
		resp = append(resp, settlementResponse{
			ID:            doc.ID,
			StakerAddress: doc.StakerAddress,
			Amount:        doc.Amount,
			Tick:          doc.Tick,
			CreatedAt:     doc.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
