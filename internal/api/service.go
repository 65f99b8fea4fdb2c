package api

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "mindmates.v1.MindMates"

// FullMethod returns the "/service/method" path of an RPC.
func FullMethod(name string) string { return "/" + ServiceName + "/" + name }

// MindMatesServer is the server API for the MindMates service.
type MindMatesServer interface {
	// auth
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)

	// profile and progression
	GetProfile(context.Context, *Empty) (*ProfileResponse, error)
	CompleteOnboarding(context.Context, *ProfileRequest) (*ProfileResponse, error)
	UpdateProfile(context.Context, *ProfileRequest) (*ProfileResponse, error)
	UpdatePreferences(context.Context, *PreferencesRequest) (*ProfileResponse, error)
	AwardXP(context.Context, *AwardXPRequest) (*StatsResponse, error)
	UpdateStats(context.Context, *UpdateStatsRequest) (*StatsResponse, error)
	CheckIn(context.Context, *CheckInRequest) (*CheckInResponse, error)
	ResetProgress(context.Context, *Empty) (*ProfileResponse, error)
	ResetAll(context.Context, *Empty) (*Empty, error)

	// challenges, games, achievements
	ListChallenges(context.Context, *ListChallengesRequest) (*ChallengesResponse, error)
	ListMiniGames(context.Context, *ListMiniGamesRequest) (*MiniGamesResponse, error)
	CompleteChallenge(context.Context, *IDRequest) (*CompleteChallengeResponse, error)
	UnlockChallenge(context.Context, *IDRequest) (*FoundResponse, error)
	UnlockMiniGame(context.Context, *IDRequest) (*FoundResponse, error)
	SetHighScore(context.Context, *SetHighScoreRequest) (*SetHighScoreResponse, error)
	DailyChallenges(context.Context, *Empty) (*ChallengesResponse, error)
	RefreshDailyChallenges(context.Context, *RefreshDailyRequest) (*RefreshDailyResponse, error)
	ListAchievements(context.Context, *ListAchievementsRequest) (*AchievementsResponse, error)
	CheckAchievements(context.Context, *Empty) (*RewardsResponse, error)
	ResetGameProgress(context.Context, *Empty) (*Empty, error)

	// moods and journal
	ListMoods(context.Context, *Empty) (*MoodsResponse, error)
	SetMood(context.Context, *SetMoodRequest) (*SetMoodResponse, error)
	GetMoodByDate(context.Context, *DateRequest) (*MoodResponse, error)
	MoodTrend(context.Context, *MoodTrendRequest) (*MoodTrendResponse, error)
	AddEntry(context.Context, *AddEntryRequest) (*AddEntryResponse, error)
	UpdateEntry(context.Context, *UpdateEntryRequest) (*EntryResponse, error)
	DeleteEntry(context.Context, *IDRequest) (*FoundResponse, error)
	ListEntries(context.Context, *ListEntriesRequest) (*EntriesResponse, error)
	AddRecording(context.Context, *AddRecordingRequest) (*AddRecordingResponse, error)
	GetRecording(context.Context, *IDRequest) (*RecordingResponse, error)
	ListRecordings(context.Context, *ListRecordingsRequest) (*RecordingsResponse, error)
	DeleteRecording(context.Context, *IDRequest) (*FoundResponse, error)
	ClearJournal(context.Context, *Empty) (*Empty, error)
	JournalPrompt(context.Context, *Empty) (*PromptResponse, error)
	StaticPrompts(context.Context, *PromptsRequest) (*PromptsResponse, error)

	// social
	RecommendFriends(context.Context, *Empty) (*RecommendResponse, error)
	ListFriends(context.Context, *Empty) (*FriendsResponse, error)
	AcceptFriend(context.Context, *IDRequest) (*FriendResponse, error)
	RemoveFriend(context.Context, *IDRequest) (*FoundResponse, error)
	Poke(context.Context, *IDRequest) (*FriendResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*MessageResponse, error)
	Thread(context.Context, *IDRequest) (*ThreadResponse, error)
}

// PublicMethods lists RPCs callable without an access token.
var PublicMethods = map[string]bool{
	FullMethod("Register"):      true,
	FullMethod("Login"):         true,
	FullMethod("ListMoods"):     true,
	FullMethod("StaticPrompts"): true,
}

// unary adapts a typed server method to a grpc.MethodDesc.
func unary[Req, Resp any](name string, call func(MindMatesServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(MindMatesServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(MindMatesServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc is the grpc.ServiceDesc for the MindMates service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MindMatesServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Register", MindMatesServer.Register),
		unary("Login", MindMatesServer.Login),
		unary("GetProfile", MindMatesServer.GetProfile),
		unary("CompleteOnboarding", MindMatesServer.CompleteOnboarding),
		unary("UpdateProfile", MindMatesServer.UpdateProfile),
		unary("UpdatePreferences", MindMatesServer.UpdatePreferences),
		unary("AwardXP", MindMatesServer.AwardXP),
		unary("UpdateStats", MindMatesServer.UpdateStats),
		unary("CheckIn", MindMatesServer.CheckIn),
		unary("ResetProgress", MindMatesServer.ResetProgress),
		unary("ResetAll", MindMatesServer.ResetAll),
		unary("ListChallenges", MindMatesServer.ListChallenges),
		unary("ListMiniGames", MindMatesServer.ListMiniGames),
		unary("CompleteChallenge", MindMatesServer.CompleteChallenge),
		unary("UnlockChallenge", MindMatesServer.UnlockChallenge),
		unary("UnlockMiniGame", MindMatesServer.UnlockMiniGame),
		unary("SetHighScore", MindMatesServer.SetHighScore),
		unary("DailyChallenges", MindMatesServer.DailyChallenges),
		unary("RefreshDailyChallenges", MindMatesServer.RefreshDailyChallenges),
		unary("ListAchievements", MindMatesServer.ListAchievements),
		unary("CheckAchievements", MindMatesServer.CheckAchievements),
		unary("ResetGameProgress", MindMatesServer.ResetGameProgress),
		unary("ListMoods", MindMatesServer.ListMoods),
		unary("SetMood", MindMatesServer.SetMood),
		unary("GetMoodByDate", MindMatesServer.GetMoodByDate),
		unary("MoodTrend", MindMatesServer.MoodTrend),
		unary("AddEntry", MindMatesServer.AddEntry),
		unary("UpdateEntry", MindMatesServer.UpdateEntry),
		unary("DeleteEntry", MindMatesServer.DeleteEntry),
		unary("ListEntries", MindMatesServer.ListEntries),
		unary("AddRecording", MindMatesServer.AddRecording),
		unary("GetRecording", MindMatesServer.GetRecording),
		unary("ListRecordings", MindMatesServer.ListRecordings),
		unary("DeleteRecording", MindMatesServer.DeleteRecording),
		unary("ClearJournal", MindMatesServer.ClearJournal),
		unary("JournalPrompt", MindMatesServer.JournalPrompt),
		unary("StaticPrompts", MindMatesServer.StaticPrompts),
		unary("RecommendFriends", MindMatesServer.RecommendFriends),
		unary("ListFriends", MindMatesServer.ListFriends),
		unary("AcceptFriend", MindMatesServer.AcceptFriend),
		unary("RemoveFriend", MindMatesServer.RemoveFriend),
		unary("Poke", MindMatesServer.Poke),
		unary("SendMessage", MindMatesServer.SendMessage),
		unary("Thread", MindMatesServer.Thread),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mindmates/v1/mindmates",
}

// RegisterMindMatesServer registers srv on s.
func RegisterMindMatesServer(s grpc.ServiceRegistrar, srv MindMatesServer) {
	s.RegisterService(&ServiceDesc, srv)
}
