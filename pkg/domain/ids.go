package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// AgentID uniquely identifies an agent listing.
type AgentID uuid.UUID

// UserID uniquely identifies a marketplace user.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// TransactionID uniquely identifies a recorded payment transaction.
type TransactionID uuid.UUID

// JobID uniquely identifies an agent job (demo or purchased run).
type JobID uuid.UUID

// MemoryID identifies a console agent memory entry.
type MemoryID uuid.UUID

func (id AgentID) String() string       { return uuid.UUID(id).String() }
func (id UserID) String() string        { return uuid.UUID(id).String() }
func (id TransactionID) String() string { return uuid.UUID(id).String() }
func (id JobID) String() string         { return uuid.UUID(id).String() }
func (id MemoryID) String() string      { return uuid.UUID(id).String() }

func NewAgentID() AgentID             { return AgentID(uuid.New()) }
func NewUserID() UserID               { return UserID(uuid.New()) }
func NewTransactionID() TransactionID { return TransactionID(uuid.New()) }
func NewJobID() JobID                 { return JobID(uuid.New()) }

// ParseAgentID parses the textual form of an AgentID.
func ParseAgentID(s string) (AgentID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return AgentID{}, fmt.Errorf("invalid agent id: %w", err)
	}

	return AgentID(id), nil
}

// ParseUserID parses the textual form of a UserID.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, fmt.Errorf("invalid user id: %w", err)
	}

	return UserID(id), nil
}

// ParseTransactionID parses the textual form of a TransactionID.
func ParseTransactionID(s string) (TransactionID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TransactionID{}, fmt.Errorf("invalid transaction id: %w", err)
	}

	return TransactionID(id), nil
}

// ParseJobID parses the textual form of a JobID.
func ParseJobID(s string) (JobID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return JobID{}, fmt.Errorf("invalid job id: %w", err)
	}

	return JobID(id), nil
}
