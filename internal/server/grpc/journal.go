package grpcserver

import (
	"context"

	"github.com/and161185/mindmates/internal/api"
	"github.com/and161185/mindmates/internal/convert"
	"github.com/and161185/mindmates/internal/journal"
)

// ListMoods returns the mood catalog. No auth required.
func (s *Server) ListMoods(context.Context, *api.Empty) (*api.MoodsResponse, error) {
	return &api.MoodsResponse{Moods: journal.Moods()}, nil
}

func (s *Server) SetMood(ctx context.Context, req *api.SetMoodRequest) (*api.SetMoodResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	m, r, err := s.journal.SetMood(ctx, userID, req.MoodID)
	if err != nil {
		return nil, toStatus("set mood", err)
	}
	return &api.SetMoodResponse{Mood: m, Rewards: convert.ToRewards(r)}, nil
}

func (s *Server) GetMoodByDate(ctx context.Context, req *api.DateRequest) (*api.MoodResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	m, ok, err := s.journal.MoodByDate(ctx, userID, req.Date)
	if err != nil {
		return nil, toStatus("mood by date", err)
	}
	return convert.ToMoodResponse(m, ok), nil
}

func (s *Server) MoodTrend(ctx context.Context, req *api.MoodTrendRequest) (*api.MoodTrendResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := s.journal.MoodTrend(ctx, userID, req.Days)
	if err != nil {
		return nil, toStatus("mood trend", err)
	}
	return &api.MoodTrendResponse{Records: convert.NonNil(recs)}, nil
}

// AddEntry stores a journal entry and awards entry XP.
func (s *Server) AddEntry(ctx context.Context, req *api.AddEntryRequest) (*api.AddEntryResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.journal.AddEntry(ctx, userID, convert.FromAddEntryRequest(req))
	if err != nil {
		return nil, toStatus("add entry", err)
	}
	return &api.AddEntryResponse{Entry: res.Entry, Stats: res.Stats, Rewards: convert.ToRewards(res.Rewards)}, nil
}

func (s *Server) UpdateEntry(ctx context.Context, req *api.UpdateEntryRequest) (*api.EntryResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	e, ok, err := s.journal.UpdateEntry(ctx, userID, req.ID, convert.FromUpdateEntryRequest(req))
	if err != nil {
		return nil, toStatus("update entry", err)
	}
	return convert.ToEntryResponse(e, ok), nil
}

func (s *Server) DeleteEntry(ctx context.Context, req *api.IDRequest) (*api.FoundResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	ok, err := s.journal.DeleteEntry(ctx, userID, req.ID)
	if err != nil {
		return nil, toStatus("delete entry", err)
	}
	return &api.FoundResponse{Found: ok}, nil
}

func (s *Server) ListEntries(ctx context.Context, req *api.ListEntriesRequest) (*api.EntriesResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	es, err := s.journal.ListEntries(ctx, userID, req.Date, req.MoodID)
	if err != nil {
		return nil, toStatus("list entries", err)
	}
	return &api.EntriesResponse{Entries: convert.NonNil(es)}, nil
}

func (s *Server) AddRecording(ctx context.Context, req *api.AddRecordingRequest) (*api.AddRecordingResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.journal.AddRecording(ctx, userID, convert.FromAddRecordingRequest(req))
	if err != nil {
		return nil, toStatus("add recording", err)
	}
	return &api.AddRecordingResponse{Recording: res.Recording, Stats: res.Stats, Rewards: convert.ToRewards(res.Rewards)}, nil
}

func (s *Server) GetRecording(ctx context.Context, req *api.IDRequest) (*api.RecordingResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	r, ok, err := s.journal.Recording(ctx, userID, req.ID)
	if err != nil {
		return nil, toStatus("get recording", err)
	}
	return convert.ToRecordingResponse(r, ok), nil
}

func (s *Server) ListRecordings(ctx context.Context, req *api.ListRecordingsRequest) (*api.RecordingsResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	rs, err := s.journal.ListRecordings(ctx, userID, req.Limit, req.AffirmationsOnly)
	if err != nil {
		return nil, toStatus("list recordings", err)
	}
	return &api.RecordingsResponse{Recordings: convert.NonNil(rs)}, nil
}

func (s *Server) DeleteRecording(ctx context.Context, req *api.IDRequest) (*api.FoundResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	ok, err := s.journal.DeleteRecording(ctx, userID, req.ID)
	if err != nil {
		return nil, toStatus("delete recording", err)
	}
	return &api.FoundResponse{Found: ok}, nil
}

func (s *Server) ClearJournal(ctx context.Context, _ *api.Empty) (*api.Empty, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.journal.ClearAll(ctx, userID); err != nil {
		return nil, toStatus("clear journal", err)
	}
	return &api.Empty{}, nil
}

// JournalPrompt asks the text model for a prompt; the response flags a local fallback.
func (s *Server) JournalPrompt(ctx context.Context, _ *api.Empty) (*api.PromptResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	o, err := s.journal.JournalPrompt(ctx, userID)
	if err != nil {
		return nil, toStatus("journal prompt", err)
	}
	return convert.ToPromptResponse(o), nil
}

// StaticPrompts returns the built-in prompts, optionally narrowed to a theme. No auth required.
func (s *Server) StaticPrompts(_ context.Context, req *api.PromptsRequest) (*api.PromptsResponse, error) {
	if req.Theme == "" {
		return &api.PromptsResponse{Prompts: journal.Prompts()}, nil
	}
	return &api.PromptsResponse{Prompts: convert.NonNil(journal.PromptsByTheme(req.Theme))}, nil
}
