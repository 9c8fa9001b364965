package supabase

import (
	"encoding/json"
	"fmt"

	"studyup/ai-gateway/config"
	"studyup/ai-gateway/types"

	"github.com/supabase-community/postgrest-go"
)

// SaveStudySessions inserts accepted plan sessions and returns the stored rows.
func (s *Store) SaveStudySessions(userID string, items []types.StudySession) ([]types.StudySession, error) {
	for i := range items {
		items[i].UserID = userID
		if items[i].Status == "" {
			items[i].Status = config.SessionStatusPlanned
		}
	}

	resp, _, err := s.client.From("study_sessions").
		Insert(items, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, types.NewStoreError("Failed to save study sessions", err)
	}

	var saved []types.StudySession
	if err := json.Unmarshal(resp, &saved); err != nil {
		return nil, types.NewStoreError("Failed to save study sessions", fmt.Errorf("failed to parse insert result: %w", err))
	}
	return saved, nil
}

// GetStudySessions lists a user's sessions for an assignment, earliest first.
func (s *Store) GetStudySessions(userID, assignmentID string) ([]types.StudySession, error) {
	resp, _, err := s.client.From("study_sessions").
		Select("*", "", false).
		Eq("user_id", userID).
		Eq("assignment_id", assignmentID).
		Order("scheduled_date", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, types.NewStoreError("Failed to fetch study sessions", err)
	}

	var sessions []types.StudySession
	if err := json.Unmarshal(resp, &sessions); err != nil {
		return nil, types.NewStoreError("Failed to fetch study sessions", fmt.Errorf("failed to decode session data: %w", err))
	}
	return sessions, nil
}
