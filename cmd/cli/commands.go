package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/and161185/mindmates/internal/api"
	"github.com/and161185/mindmates/internal/model"
)

// ---- auth ----

func authCmds(o *globalOpts) []*cobra.Command {
	var username, password string
	credFlags := func(c *cobra.Command) {
		c.Flags().StringVarP(&username, "username", "u", "", "username")
		c.Flags().StringVarP(&password, "password", "p", "", "password")
		_ = c.MarkFlagRequired("username")
		_ = c.MarkFlagRequired("password")
	}

	register := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, false, func(ctx context.Context, c *api.Client) (any, error) {
				return c.Register(ctx, &api.RegisterRequest{Username: username, Password: password})
			})
		},
	}
	credFlags(register)

	login := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, false, func(ctx context.Context, c *api.Client) (any, error) {
				resp, err := c.Login(ctx, &api.LoginRequest{Username: username, Password: password})
				if err != nil {
					return nil, err
				}
				if err := saveToken(resp.AccessToken, resp.ExpiresAt); err != nil {
					return nil, err
				}
				if err := saveUserID(resp.UserID); err != nil {
					return nil, err
				}
				return map[string]any{"userId": resp.UserID, "expiresAt": resp.ExpiresAt}, nil
			})
		},
	}
	credFlags(login)

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Print the logged-in user id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := loadToken(); err != nil {
				return err
			}
			id, err := loadUserID()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		Args:  cobra.NoArgs,
		RunE:  func(*cobra.Command, []string) error { return logout() },
	}
	return []*cobra.Command{register, login, whoami, logoutCmd}
}

// ---- profile and progression ----

func profileCmd(o *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show profile, stats and streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.GetProfile(ctx, &api.Empty{})
			})
		},
	}

	var p model.UserProfile
	onboard := &cobra.Command{
		Use:   "onboard",
		Short: "Complete onboarding with the given profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.CompleteOnboarding(ctx, &api.ProfileRequest{Profile: p})
			})
		},
	}
	f := onboard.Flags()
	f.StringVar(&p.Name, "name", "", "display name")
	f.StringVar(&p.Avatar, "avatar", "", "avatar id")
	f.StringVar(&p.AgeRange, "age-range", "", "age range, e.g. 13-15")
	f.StringVar(&p.Birthdate, "birthdate", "", "birthdate YYYY-MM-DD")
	f.StringSliceVar(&p.Personality, "personality", nil, "personality traits")
	f.StringSliceVar(&p.Hobbies, "hobby", nil, "hobbies")
	f.StringSliceVar(&p.MusicTaste, "music", nil, "music taste")
	f.StringSliceVar(&p.EmotionalNeeds, "need", nil, "emotional needs")
	f.StringSliceVar(&p.CommonMoods, "common-mood", nil, "common moods")
	f.StringSliceVar(&p.LearningStyle, "learning-style", nil, "learning style")
	_ = onboard.MarkFlagRequired("name")

	var prefs model.Preferences
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Replace app preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.UpdatePreferences(ctx, &api.PreferencesRequest{Preferences: prefs})
			})
		},
	}
	pf := prefsCmd.Flags()
	pf.BoolVar(&prefs.Notifications, "notifications", true, "enable notifications")
	pf.BoolVar(&prefs.DarkMode, "dark-mode", false, "dark mode")
	pf.BoolVar(&prefs.SoundEffects, "sound", true, "sound effects")
	pf.BoolVar(&prefs.Music, "music", true, "background music")
	pf.BoolVar(&prefs.HapticFeedback, "haptics", true, "haptic feedback")

	xp := &cobra.Command{
		Use:   "xp <amount>",
		Short: "Award XP directly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad amount: %w", err)
			}
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.AwardXP(ctx, &api.AwardXPRequest{Amount: n})
			})
		},
	}

	var sp statsPatchFlags
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Update play time and trait scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := sp.request(cmd)
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.UpdateStats(ctx, req)
			})
		},
	}
	sp.bind(stats)

	cmd.AddCommand(onboard, prefsCmd, xp, stats)
	return cmd
}

type statsPatchFlags struct {
	playTime, focus, creativity, resilience, mindfulness, emotionalIQ int
}

func (s *statsPatchFlags) bind(c *cobra.Command) {
	f := c.Flags()
	f.IntVar(&s.playTime, "play-time", 0, "total play time (minutes)")
	f.IntVar(&s.focus, "focus", 0, "focus score 0-100")
	f.IntVar(&s.creativity, "creativity", 0, "creativity score 0-100")
	f.IntVar(&s.resilience, "resilience", 0, "resilience score 0-100")
	f.IntVar(&s.mindfulness, "mindfulness", 0, "mindfulness score 0-100")
	f.IntVar(&s.emotionalIQ, "emotional-iq", 0, "emotional IQ score 0-100")
}

// request includes only the flags given on the command line.
func (s *statsPatchFlags) request(c *cobra.Command) *api.UpdateStatsRequest {
	pick := func(name string, v int) *int {
		if !c.Flags().Changed(name) {
			return nil
		}
		return &v
	}
	return &api.UpdateStatsRequest{
		TotalPlayTime:    pick("play-time", s.playTime),
		FocusScore:       pick("focus", s.focus),
		CreativityScore:  pick("creativity", s.creativity),
		ResilienceScore:  pick("resilience", s.resilience),
		MindfulnessScore: pick("mindfulness", s.mindfulness),
		EmotionalIQScore: pick("emotional-iq", s.emotionalIQ),
	}
}

func checkInCmd(o *globalOpts) *cobra.Command {
	var mood string
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's visit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.CheckIn(ctx, &api.CheckInRequest{MoodID: mood})
			})
		},
	}
	cmd.Flags().StringVar(&mood, "mood", "", "mood id to set")
	return cmd
}

// ---- challenges, games, achievements ----

func challengesCmd(o *globalOpts) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "List challenges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListChallenges(ctx, &api.ListChallengesRequest{Category: model.ChallengeCategory(category)})
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "filter by category")

	var count int
	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Draw today's daily challenges if not drawn yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.RefreshDailyChallenges(ctx, &api.RefreshDailyRequest{Count: count})
			})
		},
	}
	refresh.Flags().IntVar(&count, "count", 0, "challenges to draw (0: server default)")

	cmd.AddCommand(
		idCmd(o, "complete", "Complete a challenge", func(ctx context.Context, c *api.Client, id string) (any, error) {
			return c.CompleteChallenge(ctx, &api.IDRequest{ID: id})
		}),
		idCmd(o, "unlock", "Unlock a challenge", func(ctx context.Context, c *api.Client, id string) (any, error) {
			return c.UnlockChallenge(ctx, &api.IDRequest{ID: id})
		}),
		simpleCmd(o, "daily", "Show today's daily challenges", func(ctx context.Context, c *api.Client) (any, error) {
			return c.DailyChallenges(ctx, &api.Empty{})
		}),
		refresh,
	)
	return cmd
}

func gamesCmd(o *globalOpts) *cobra.Command {
	var category, difficulty string
	cmd := &cobra.Command{
		Use:   "games",
		Short: "List mini-games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListMiniGames(ctx, &api.ListMiniGamesRequest{
					Category:   model.GameCategory(category),
					Difficulty: model.Difficulty(difficulty),
				})
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "filter by difficulty")

	score := &cobra.Command{
		Use:   "score <game-id> <score>",
		Short: "Submit a game score",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("bad score: %w", err)
			}
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.SetHighScore(ctx, &api.SetHighScoreRequest{GameID: args[0], Score: n})
			})
		},
	}
	cmd.AddCommand(
		score,
		idCmd(o, "unlock", "Unlock a mini-game", func(ctx context.Context, c *api.Client, id string) (any, error) {
			return c.UnlockMiniGame(ctx, &api.IDRequest{ID: id})
		}),
	)
	return cmd
}

func achievementsCmd(o *globalOpts) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "List achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListAchievements(ctx, &api.ListAchievementsRequest{Filter: filter})
			})
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "unlocked | in_progress")
	cmd.AddCommand(simpleCmd(o, "check", "Re-evaluate achievement progress", func(ctx context.Context, c *api.Client) (any, error) {
		return c.CheckAchievements(ctx, &api.Empty{})
	}))
	return cmd
}

// ---- moods and journal ----

func moodCmd(o *globalOpts) *cobra.Command {
	cmd := &cobra.Command{Use: "mood", Short: "Moods and mood history"}

	var days int
	trend := &cobra.Command{
		Use:   "trend",
		Short: "Show recent moods, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.MoodTrend(ctx, &api.MoodTrendRequest{Days: days})
			})
		},
	}
	trend.Flags().IntVar(&days, "days", 7, "days to include")

	list := &cobra.Command{
		Use:   "list",
		Short: "List available moods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, false, func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListMoods(ctx, &api.Empty{})
			})
		},
	}

	cmd.AddCommand(
		list,
		idCmd(o, "set", "Set today's mood", func(ctx context.Context, c *api.Client, id string) (any, error) {
			return c.SetMood(ctx, &api.SetMoodRequest{MoodID: id})
		}),
		idCmd(o, "get", "Show the mood of a date (YYYY-MM-DD)", func(ctx context.Context, c *api.Client, date string) (any, error) {
			return c.GetMoodByDate(ctx, &api.DateRequest{Date: date})
		}),
		trend,
	)
	return cmd
}

func journalCmd(o *globalOpts) *cobra.Command {
	cmd := &cobra.Command{Use: "journal", Short: "Journal entries and prompts"}

	var (
		add  api.AddEntryRequest
		file string
	)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Write an entry (content from --content or --file, '-' for stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file != "" {
				b, err := readAll(file)
				if err != nil {
					return err
				}
				add.Content = string(b)
			}
			if add.Content == "" {
				return errors.New("need --content or --file")
			}
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.AddEntry(ctx, &add)
			})
		},
	}
	af := addCmd.Flags()
	af.StringVar(&add.Content, "content", "", "entry text")
	af.StringVar(&file, "file", "", "read entry text from file")
	af.StringVar(&add.MoodID, "mood", "", "mood id (default: current mood)")
	af.StringSliceVar(&add.Tags, "tag", nil, "tags")
	af.BoolVar(&add.IsPrivate, "private", false, "private entry")
	af.StringVar(&add.VoiceRecordingID, "recording", "", "attached voice recording id")

	var (
		content, mood string
		tags          []string
		private       bool
	)
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &api.UpdateEntryRequest{ID: args[0]}
			fl := cmd.Flags()
			if fl.Changed("content") {
				req.Content = &content
			}
			if fl.Changed("mood") {
				req.MoodID = &mood
			}
			if fl.Changed("tag") {
				req.Tags = tags
			}
			if fl.Changed("private") {
				req.IsPrivate = &private
			}
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.UpdateEntry(ctx, req)
			})
		},
	}
	ef := edit.Flags()
	ef.StringVar(&content, "content", "", "entry text")
	ef.StringVar(&mood, "mood", "", "mood id")
	ef.StringSliceVar(&tags, "tag", nil, "tags (replaces existing)")
	ef.BoolVar(&private, "private", false, "private entry")

	var list api.ListEntriesRequest
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListEntries(ctx, &list)
			})
		},
	}
	ls.Flags().StringVar(&list.Date, "date", "", "only entries of a date (YYYY-MM-DD)")
	ls.Flags().StringVar(&list.MoodID, "mood", "", "only entries with a mood")

	var theme string
	prompts := &cobra.Command{
		Use:   "prompts",
		Short: "List built-in prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, false, func(ctx context.Context, c *api.Client) (any, error) {
				return c.StaticPrompts(ctx, &api.PromptsRequest{Theme: theme})
			})
		},
	}
	prompts.Flags().StringVar(&theme, "theme", "", "gratitude | growth | joy | reflection")

	cmd.AddCommand(
		addCmd,
		edit,
		idCmd(o, "rm", "Delete an entry", func(ctx context.Context, c *api.Client, id string) (any, error) {
			return c.DeleteEntry(ctx, &api.IDRequest{ID: id})
		}),
		ls,
		simpleCmd(o, "prompt", "Get a personalized writing prompt", func(ctx context.Context, c *api.Client) (any, error) {
			return c.JournalPrompt(ctx, &api.Empty{})
		}),
		prompts,
		simpleCmd(o, "clear", "Delete all entries, recordings and mood history", func(ctx context.Context, c *api.Client) (any, error) {
			return c.ClearJournal(ctx, &api.Empty{})
		}),
	)
	return cmd
}

func recordingsCmd(o *globalOpts) *cobra.Command {
	cmd := &cobra.Command{Use: "recordings", Short: "Voice recordings"}

	var add api.AddRecordingRequest
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a recorded clip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.AddRecording(ctx, &add)
			})
		},
	}
	f := addCmd.Flags()
	f.StringVar(&add.URI, "uri", "", "clip location")
	f.IntVar(&add.Duration, "duration", 0, "length in seconds")
	f.StringVar(&add.MoodID, "mood", "", "mood id")
	f.BoolVar(&add.IsPositiveAffirmation, "affirmation", false, "positive affirmation")
	f.StringVar(&add.Title, "title", "", "title")
	_ = addCmd.MarkFlagRequired("uri")

	var list api.ListRecordingsRequest
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List recordings, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListRecordings(ctx, &list)
			})
		},
	}
	ls.Flags().IntVar(&list.Limit, "limit", 0, "max results (0: all)")
	ls.Flags().BoolVar(&list.AffirmationsOnly, "affirmations", false, "only positive affirmations")

	cmd.AddCommand(
		addCmd,
		idCmd(o, "get", "Show a recording", func(ctx context.Context, c *api.Client, id string) (any, error) {
			return c.GetRecording(ctx, &api.IDRequest{ID: id})
		}),
		ls,
		idCmd(o, "rm", "Delete a recording", func(ctx context.Context, c *api.Client, id string) (any, error) {
			return c.DeleteRecording(ctx, &api.IDRequest{ID: id})
		}),
	)
	return cmd
}

// ---- social ----

func friendsCmd(o *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "List friends and recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListFriends(ctx, &api.Empty{})
			})
		},
	}

	var audio bool
	msg := &cobra.Command{
		Use:   "msg <friend-id> <text>",
		Short: "Send a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return c.SendMessage(ctx, &api.SendMessageRequest{FriendID: args[0], Content: args[1], IsAudio: audio})
			})
		},
	}
	msg.Flags().BoolVar(&audio, "audio", false, "content is an audio clip reference")

	cmd.AddCommand(
		simpleCmd(o, "recommend", "Ask for new friend recommendations", func(ctx context.Context, c *api.Client) (any, error) {
			return c.RecommendFriends(ctx, &api.Empty{})
		}),
		idCmd(o, "accept", "Accept a recommendation", func(ctx context.Context, c *api.Client, id string) (any, error) {
			return c.AcceptFriend(ctx, &api.IDRequest{ID: id})
		}),
		idCmd(o, "rm", "Remove a friend", func(ctx context.Context, c *api.Client, id string) (any, error) {
			return c.RemoveFriend(ctx, &api.IDRequest{ID: id})
		}),
		idCmd(o, "poke", "Poke a friend", func(ctx context.Context, c *api.Client, id string) (any, error) {
			return c.Poke(ctx, &api.IDRequest{ID: id})
		}),
		msg,
		idCmd(o, "thread", "Show messages with a friend", func(ctx context.Context, c *api.Client, id string) (any, error) {
			return c.Thread(ctx, &api.IDRequest{ID: id})
		}),
	)
	return cmd
}

// ---- reset ----

func resetCmd(o *globalOpts) *cobra.Command {
	cmd := &cobra.Command{Use: "reset", Short: "Reset stored progress"}
	cmd.AddCommand(
		simpleCmd(o, "progress", "Reset level, XP, counters and streak", func(ctx context.Context, c *api.Client) (any, error) {
			return c.ResetProgress(ctx, &api.Empty{})
		}),
		simpleCmd(o, "games", "Reset challenges, scores and achievements", func(ctx context.Context, c *api.Client) (any, error) {
			return c.ResetGameProgress(ctx, &api.Empty{})
		}),
		simpleCmd(o, "all", "Delete every stored document", func(ctx context.Context, c *api.Client) (any, error) {
			return c.ResetAll(ctx, &api.Empty{})
		}),
	)
	return cmd
}

// ---- builders ----

// simpleCmd builds an authenticated command without arguments.
func simpleCmd(o *globalOpts, use, short string, fn rpcFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, true, fn)
		},
	}
}

// idCmd builds an authenticated command taking one positional argument.
func idCmd(o *globalOpts, use, short string, fn func(ctx context.Context, c *api.Client, id string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, true, func(ctx context.Context, c *api.Client) (any, error) {
				return fn(ctx, c, args[0])
			})
		},
	}
}
