package v1handler

import (
	"net/http"

	"agenthub/pkg/domain"
	"agenthub/pkg/serrors"
	"agenthub/pkg/storage"
)

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}
	if page.Limit < 0 || page.Offset < 0 {
		h.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "limit and offset cannot be negative"))

		return
	}

	filter := storage.TransactionFilter{
		Wallet: r.URL.Query().Get("wallet"),
		Status: domain.TransactionStatus(r.URL.Query().Get("status")),
		Limit:  uint(page.Limit),
		Offset: uint(page.Offset),
	}
	if v := r.URL.Query().Get("agent_id"); v != "" {
		id, err := domain.ParseAgentID(v)
		if err != nil {
			h.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid agent id"))

			return
		}
		filter.AgentID = &id
	}

	txs, err := h.deps.Marketplace.Transactions(r.Context(), CallerFromContext(r.Context()), filter)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	items := make([]Transaction, 0, len(txs))
	for i := range txs {
		items = append(items, DomainTransactionToV1(&txs[i]))
	}
	writeJSON(r.Context(), w, http.StatusOK, List[Transaction]{Items: items, Limit: page.Limit, Offset: page.Offset})
}

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := transactionIDParam(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	tx, err := h.deps.Marketplace.Transaction(r.Context(), CallerFromContext(r.Context()), id)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainTransactionToV1(tx))
}

// VerifyTransaction checks the payment on chain and confirms it when included in a block.
func (h *Handler) VerifyTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := transactionIDParam(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	tx, err := h.deps.Marketplace.VerifyTransaction(r.Context(), CallerFromContext(r.Context()), id)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainTransactionToV1(tx))
}
