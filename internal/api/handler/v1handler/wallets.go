package v1handler

import (
	"net/http"

	"agenthub/pkg/cardano"

	"github.com/go-chi/chi/v5"
)

type WalletBalance struct {
	Address  string  `json:"address"`
	Lovelace int64   `json:"lovelace"`
	ADA      string  `json:"ada"`
	Assets   []Asset `json:"assets"`
}

type Asset struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

func (h *Handler) WalletBalance(w http.ResponseWriter, r *http.Request) {
	info, err := h.deps.Marketplace.WalletBalance(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	assets := make([]Asset, 0, len(info.Assets))
	for _, a := range info.Assets {
		assets = append(assets, Asset(a))
	}
	writeJSON(r.Context(), w, http.StatusOK, WalletBalance{
		Address:  info.Address,
		Lovelace: info.Lovelace,
		ADA:      cardano.FormatADA(info.Lovelace),
		Assets:   assets,
	})
}

// WalletEarnings sums the confirmed payments the wallet received as a creator.
func (h *Handler) WalletEarnings(w http.ResponseWriter, r *http.Request) {
	total, err := h.deps.Marketplace.Earnings(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, newEarnings(total))
}
