package api

import (
	"context"

	"google.golang.org/grpc"
)

// Client is a typed MindMates client. All calls use the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client { return &Client{cc: cc} }

func invoke[Req, Resp any](ctx context.Context, c *Client, name string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FullMethod(name), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterRequest, RegisterResponse](ctx, c, "Register", in, opts)
}

func (c *Client) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginRequest, LoginResponse](ctx, c, "Login", in, opts)
}

func (c *Client) GetProfile(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[Empty, ProfileResponse](ctx, c, "GetProfile", in, opts)
}

func (c *Client) CompleteOnboarding(ctx context.Context, in *ProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileRequest, ProfileResponse](ctx, c, "CompleteOnboarding", in, opts)
}

func (c *Client) UpdateProfile(ctx context.Context, in *ProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileRequest, ProfileResponse](ctx, c, "UpdateProfile", in, opts)
}

func (c *Client) UpdatePreferences(ctx context.Context, in *PreferencesRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[PreferencesRequest, ProfileResponse](ctx, c, "UpdatePreferences", in, opts)
}

func (c *Client) AwardXP(ctx context.Context, in *AwardXPRequest, opts ...grpc.CallOption) (*StatsResponse, error) {
	return invoke[AwardXPRequest, StatsResponse](ctx, c, "AwardXP", in, opts)
}

func (c *Client) UpdateStats(ctx context.Context, in *UpdateStatsRequest, opts ...grpc.CallOption) (*StatsResponse, error) {
	return invoke[UpdateStatsRequest, StatsResponse](ctx, c, "UpdateStats", in, opts)
}

func (c *Client) CheckIn(ctx context.Context, in *CheckInRequest, opts ...grpc.CallOption) (*CheckInResponse, error) {
	return invoke[CheckInRequest, CheckInResponse](ctx, c, "CheckIn", in, opts)
}

func (c *Client) ResetProgress(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[Empty, ProfileResponse](ctx, c, "ResetProgress", in, opts)
}

func (c *Client) ResetAll(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty, Empty](ctx, c, "ResetAll", in, opts)
}

func (c *Client) ListChallenges(ctx context.Context, in *ListChallengesRequest, opts ...grpc.CallOption) (*ChallengesResponse, error) {
	return invoke[ListChallengesRequest, ChallengesResponse](ctx, c, "ListChallenges", in, opts)
}

func (c *Client) ListMiniGames(ctx context.Context, in *ListMiniGamesRequest, opts ...grpc.CallOption) (*MiniGamesResponse, error) {
	return invoke[ListMiniGamesRequest, MiniGamesResponse](ctx, c, "ListMiniGames", in, opts)
}

func (c *Client) CompleteChallenge(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*CompleteChallengeResponse, error) {
	return invoke[IDRequest, CompleteChallengeResponse](ctx, c, "CompleteChallenge", in, opts)
}

func (c *Client) UnlockChallenge(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*FoundResponse, error) {
	return invoke[IDRequest, FoundResponse](ctx, c, "UnlockChallenge", in, opts)
}

func (c *Client) UnlockMiniGame(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*FoundResponse, error) {
	return invoke[IDRequest, FoundResponse](ctx, c, "UnlockMiniGame", in, opts)
}

func (c *Client) SetHighScore(ctx context.Context, in *SetHighScoreRequest, opts ...grpc.CallOption) (*SetHighScoreResponse, error) {
	return invoke[SetHighScoreRequest, SetHighScoreResponse](ctx, c, "SetHighScore", in, opts)
}

func (c *Client) DailyChallenges(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ChallengesResponse, error) {
	return invoke[Empty, ChallengesResponse](ctx, c, "DailyChallenges", in, opts)
}

func (c *Client) RefreshDailyChallenges(ctx context.Context, in *RefreshDailyRequest, opts ...grpc.CallOption) (*RefreshDailyResponse, error) {
	return invoke[RefreshDailyRequest, RefreshDailyResponse](ctx, c, "RefreshDailyChallenges", in, opts)
}

func (c *Client) ListAchievements(ctx context.Context, in *ListAchievementsRequest, opts ...grpc.CallOption) (*AchievementsResponse, error) {
	return invoke[ListAchievementsRequest, AchievementsResponse](ctx, c, "ListAchievements", in, opts)
}

func (c *Client) CheckAchievements(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*RewardsResponse, error) {
	return invoke[Empty, RewardsResponse](ctx, c, "CheckAchievements", in, opts)
}

func (c *Client) ResetGameProgress(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty, Empty](ctx, c, "ResetGameProgress", in, opts)
}

func (c *Client) ListMoods(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*MoodsResponse, error) {
	return invoke[Empty, MoodsResponse](ctx, c, "ListMoods", in, opts)
}

func (c *Client) SetMood(ctx context.Context, in *SetMoodRequest, opts ...grpc.CallOption) (*SetMoodResponse, error) {
	return invoke[SetMoodRequest, SetMoodResponse](ctx, c, "SetMood", in, opts)
}

func (c *Client) GetMoodByDate(ctx context.Context, in *DateRequest, opts ...grpc.CallOption) (*MoodResponse, error) {
	return invoke[DateRequest, MoodResponse](ctx, c, "GetMoodByDate", in, opts)
}

func (c *Client) MoodTrend(ctx context.Context, in *MoodTrendRequest, opts ...grpc.CallOption) (*MoodTrendResponse, error) {
	return invoke[MoodTrendRequest, MoodTrendResponse](ctx, c, "MoodTrend", in, opts)
}

func (c *Client) AddEntry(ctx context.Context, in *AddEntryRequest, opts ...grpc.CallOption) (*AddEntryResponse, error) {
	return invoke[AddEntryRequest, AddEntryResponse](ctx, c, "AddEntry", in, opts)
}

func (c *Client) UpdateEntry(ctx context.Context, in *UpdateEntryRequest, opts ...grpc.CallOption) (*EntryResponse, error) {
	return invoke[UpdateEntryRequest, EntryResponse](ctx, c, "UpdateEntry", in, opts)
}

func (c *Client) DeleteEntry(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*FoundResponse, error) {
	return invoke[IDRequest, FoundResponse](ctx, c, "DeleteEntry", in, opts)
}

func (c *Client) ListEntries(ctx context.Context, in *ListEntriesRequest, opts ...grpc.CallOption) (*EntriesResponse, error) {
	return invoke[ListEntriesRequest, EntriesResponse](ctx, c, "ListEntries", in, opts)
}

func (c *Client) AddRecording(ctx context.Context, in *AddRecordingRequest, opts ...grpc.CallOption) (*AddRecordingResponse, error) {
	return invoke[AddRecordingRequest, AddRecordingResponse](ctx, c, "AddRecording", in, opts)
}

func (c *Client) GetRecording(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*RecordingResponse, error) {
	return invoke[IDRequest, RecordingResponse](ctx, c, "GetRecording", in, opts)
}

func (c *Client) ListRecordings(ctx context.Context, in *ListRecordingsRequest, opts ...grpc.CallOption) (*RecordingsResponse, error) {
	return invoke[ListRecordingsRequest, RecordingsResponse](ctx, c, "ListRecordings", in, opts)
}

func (c *Client) DeleteRecording(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*FoundResponse, error) {
	return invoke[IDRequest, FoundResponse](ctx, c, "DeleteRecording", in, opts)
}

func (c *Client) ClearJournal(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty, Empty](ctx, c, "ClearJournal", in, opts)
}

func (c *Client) JournalPrompt(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PromptResponse, error) {
	return invoke[Empty, PromptResponse](ctx, c, "JournalPrompt", in, opts)
}

func (c *Client) StaticPrompts(ctx context.Context, in *PromptsRequest, opts ...grpc.CallOption) (*PromptsResponse, error) {
	return invoke[PromptsRequest, PromptsResponse](ctx, c, "StaticPrompts", in, opts)
}

func (c *Client) RecommendFriends(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*RecommendResponse, error) {
	return invoke[Empty, RecommendResponse](ctx, c, "RecommendFriends", in, opts)
}

func (c *Client) ListFriends(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*FriendsResponse, error) {
	return invoke[Empty, FriendsResponse](ctx, c, "ListFriends", in, opts)
}

func (c *Client) AcceptFriend(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*FriendResponse, error) {
	return invoke[IDRequest, FriendResponse](ctx, c, "AcceptFriend", in, opts)
}

func (c *Client) RemoveFriend(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*FoundResponse, error) {
	return invoke[IDRequest, FoundResponse](ctx, c, "RemoveFriend", in, opts)
}

func (c *Client) Poke(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*FriendResponse, error) {
	return invoke[IDRequest, FriendResponse](ctx, c, "Poke", in, opts)
}

func (c *Client) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[SendMessageRequest, MessageResponse](ctx, c, "SendMessage", in, opts)
}

func (c *Client) Thread(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*ThreadResponse, error) {
	return invoke[IDRequest, ThreadResponse](ctx, c, "Thread", in, opts)
}
