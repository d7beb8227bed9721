package v1handler

import (
	"net/http"

	"agenthub/pkg/domain"
	"agenthub/pkg/serrors"
	"agenthub/pkg/storage"
)

// ListJobs lists the caller's jobs. Administrators may filter by any wallet.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}
	isDemo, err := queryBool(r, "is_demo")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	filter := storage.JobFilter{
		UserWallet: r.URL.Query().Get("user_wallet"),
		Status:     domain.JobStatus(r.URL.Query().Get("status")),
		IsDemo:     isDemo,
	}
	if v := r.URL.Query().Get("agent_id"); v != "" {
		id, err := domain.ParseAgentID(v)
		if err != nil {
			h.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid agent id"))

			return
		}
		filter.AgentID = &id
	}
	if page.Limit < 0 || page.Offset < 0 {
		h.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "limit and offset cannot be negative"))

		return
	}
	filter.Limit, filter.Offset = uint(page.Limit), uint(page.Offset)

	jobs, err := h.deps.Marketplace.Jobs(r.Context(), CallerFromContext(r.Context()), filter)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	items := make([]Job, 0, len(jobs))
	for i := range jobs {
		items = append(items, DomainJobToV1(&jobs[i]))
	}
	writeJSON(r.Context(), w, http.StatusOK, List[Job]{Items: items, Limit: page.Limit, Offset: page.Offset})
}

// GetJob returns a job. Purchased runs are only shown to the buyer, the agent
// creator and administrators.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := jobIDParam(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	job, err := h.deps.Marketplace.Job(r.Context(), CallerFromContext(r.Context()), id)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainJobToV1(job))
}

func (h *Handler) JobStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Marketplace.JobStats(r.Context(), nil)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainJobStatsToV1(stats))
}
