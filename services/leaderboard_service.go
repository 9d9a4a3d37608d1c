package services

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// LeaderboardService keeps a per-quiz sorted set of best scores in
// Redis. Only a user's highest score is retained.
type LeaderboardService struct {
	redis *redis.Client
}

func NewLeaderboardService(redisClient *redis.Client) *LeaderboardService {
	return &LeaderboardService{redis: redisClient}
}

type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Score  int    `json:"score"`
}

func leaderboardKey(quizID uint) string {
	return fmt.Sprintf("quiz:%d:leaderboard", quizID)
}

// RecordScore updates the user's entry only when the new score beats the
// stored one.
func (s *LeaderboardService) RecordScore(quizID uint, userID string, score int) error {
	return s.redis.ZAddArgs(context.Background(), leaderboardKey(quizID), redis.ZAddArgs{
		GT:      true,
		Members: []redis.Z{{Score: float64(score), Member: userID}},
	}).Err()
}

// TopScores returns up to limit entries, highest score first.
func (s *LeaderboardService) TopScores(quizID uint, limit int) ([]LeaderboardEntry, error) {
	results, err := s.redis.ZRevRangeWithScores(context.Background(), leaderboardKey(quizID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for _, z := range results {
		entries = append(entries, LeaderboardEntry{
			UserID: z.Member,
			Score:  int(z.Score),
		})
	}
	return entries, nil
}
