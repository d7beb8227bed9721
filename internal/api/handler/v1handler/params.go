package v1handler

import (
	"net/http"
	"strconv"

	"agenthub/pkg/domain"
	"agenthub/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

type pageParams struct {
	Limit  int
	Offset int
}

func parsePage(r *http.Request) (pageParams, error) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return pageParams{}, err
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		return pageParams{}, err
	}

	return pageParams{Limit: limit, Offset: offset}, nil
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be an integer", key)
	}

	return n, nil
}

func queryBool(r *http.Request, key string) (*bool, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil //nolint: nilnil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "%s must be a boolean", key)
	}

	return &b, nil
}

func agentIDParam(r *http.Request) (domain.AgentID, error) {
	id, err := domain.ParseAgentID(chi.URLParam(r, "agentID"))
	if err != nil {
		return domain.AgentID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid agent id")
	}

	return id, nil
}

func jobIDParam(r *http.Request) (domain.JobID, error) {
	id, err := domain.ParseJobID(chi.URLParam(r, "jobID"))
	if err != nil {
		return domain.JobID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid job id")
	}

	return id, nil
}

func userIDParam(r *http.Request) (domain.UserID, error) {
	id, err := domain.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid user id")
	}

	return id, nil
}

func transactionIDParam(r *http.Request) (domain.TransactionID, error) {
	id, err := domain.ParseTransactionID(chi.URLParam(r, "transactionID"))
	if err != nil {
		return domain.TransactionID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid transaction id")
	}

	return id, nil
}
