package supabase

import (
	"encoding/json"
	"fmt"

	"studyup/ai-gateway/types"

	"github.com/supabase-community/supabase-go"
)

// Store wraps one Supabase client with the queries the relays need.
type Store struct {
	client *supabase.Client
}

func NewStore(client *supabase.Client) *Store {
	return &Store{client: client}
}

// GetAssignment fetches the assignment snapshot used for prompting.
func (s *Store) GetAssignment(assignmentID string) (types.AssignmentSnapshot, error) {
	resp, _, err := s.client.From("assignments").
		Select("title, description, due_date, course_id", "", false).
		Eq("id", assignmentID).
		Limit(2, "").
		Execute()
	if err != nil {
		return types.AssignmentSnapshot{}, types.NewStoreError("Failed to fetch assignment", err)
	}

	var assignments []types.AssignmentSnapshot
	if err := json.Unmarshal(resp, &assignments); err != nil {
		return types.AssignmentSnapshot{}, types.NewStoreError("Failed to fetch assignment", fmt.Errorf("failed to decode assignment data: %w", err))
	}

	switch len(assignments) {
	case 0:
		return types.AssignmentSnapshot{}, types.NewNotFound("Assignment not found")
	case 1:
		return assignments[0], nil
	default:
		return types.AssignmentSnapshot{}, types.NewStoreError("Failed to fetch assignment", fmt.Errorf("assignment id %s matched %d rows", assignmentID, len(assignments)))
	}
}

// GetMaterials returns up to limit materials attached to the assignment, in store order.
func (s *Store) GetMaterials(assignmentID string, limit int) ([]types.MaterialSnapshot, error) {
	resp, _, err := s.client.From("materials").
		Select("title, content", "", false).
		Eq("assignment_id", assignmentID).
		Limit(limit, "").
		Execute()
	if err != nil {
		return nil, types.NewStoreError("Failed to fetch materials", err)
	}

	var materials []types.MaterialSnapshot
	if err := json.Unmarshal(resp, &materials); err != nil {
		return nil, types.NewStoreError("Failed to fetch materials", fmt.Errorf("failed to decode material data: %w", err))
	}
	if len(materials) > limit {
		materials = materials[:limit]
	}
	return materials, nil
}
