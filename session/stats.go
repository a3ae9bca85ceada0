package session

import (
	"sort"
	"sync"
	"time"
)

// GroupSize is how many records of one compression level are folded into a
// single summary record.
const GroupSize = 100

// Stats keeps the finished games of a session. Old records are folded into
// summary records so memory stays bounded on long sessions.
type Stats struct {
	Games []GameRecord
	mutex sync.RWMutex
}

// GameRecord describes one finished game, or a group of games when
// CompressionIndex > 0.
type GameRecord struct {
	GameID           string
	Outcome          string
	StartTime        time.Time
	EndTime          time.Time
	Score            int
	CompressionIndex int
	GamesCount       int
	AverageScore     float64
	MedianScore      float64
	MaxScore         int
	MinScore         int
	AverageDuration  float64 // seconds
	MaxDuration      float64
	MinDuration      float64
}

func NewStats() *Stats {
	return &Stats{Games: make([]GameRecord, 0)}
}

// AddGame records a finished game.
func (s *Stats) AddGame(gameID, outcome string, score int, startTime, endTime time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	duration := endTime.Sub(startTime).Seconds()
	s.Games = append(s.Games, GameRecord{
		GameID:          gameID,
		Outcome:         outcome,
		StartTime:       startTime,
		EndTime:         endTime,
		Score:           score,
		GamesCount:      1,
		AverageScore:    float64(score),
		MedianScore:     float64(score),
		MaxScore:        score,
		MinScore:        score,
		AverageDuration: duration,
		MaxDuration:     duration,
		MinDuration:     duration,
	})

	s.groupGames()
}

// groupGames folds every full run of GroupSize records sharing a compression
// level into one record of the next level.
func (s *Stats) groupGames() {
	sort.SliceStable(s.Games, func(i, j int) bool {
		if s.Games[i].CompressionIndex != s.Games[j].CompressionIndex {
			return s.Games[i].CompressionIndex > s.Games[j].CompressionIndex
		}
		return s.Games[i].StartTime.Before(s.Games[j].StartTime)
	})

	for level := 0; ; level++ {
		var records, others []GameRecord
		for _, g := range s.Games {
			if g.CompressionIndex == level {
				records = append(records, g)
			} else {
				others = append(others, g)
			}
		}
		if len(records) < GroupSize {
			return
		}

		var folded []GameRecord
		for i := 0; i < len(records); i += GroupSize {
			end := i + GroupSize
			if end > len(records) {
				folded = append(folded, records[i:]...)
				break
			}
			folded = append(folded, summarize(records[i:end], level+1))
		}
		s.Games = append(others, folded...)
	}
}

func summarize(group []GameRecord, level int) GameRecord {
	sum := GameRecord{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}
	var totalScore, totalDuration float64
	var medians []float64
	for _, g := range group {
		sum.MaxScore = max(sum.MaxScore, g.MaxScore)
		sum.MinScore = min(sum.MinScore, g.MinScore)
		sum.MaxDuration = max(sum.MaxDuration, g.MaxDuration)
		sum.MinDuration = min(sum.MinDuration, g.MinDuration)
		if g.StartTime.Before(sum.StartTime) {
			sum.StartTime = g.StartTime
		}
		if g.EndTime.After(sum.EndTime) {
			sum.EndTime = g.EndTime
		}
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		sum.GamesCount += g.GamesCount
		for i := 0; i < g.GamesCount; i++ {
			medians = append(medians, g.MedianScore)
		}
	}
	sum.AverageScore = totalScore / float64(sum.GamesCount)
	sum.AverageDuration = totalDuration / float64(sum.GamesCount)
	sum.MedianScore = median(medians)
	return sum
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	n := len(values)
	if n%2 == 0 {
		return (values[n/2-1] + values[n/2]) / 2
	}
	return values[n/2]
}

// GetStats returns a copy of the current records.
func (s *Stats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.Games))
	copy(out, s.Games)
	return out
}

func (s *Stats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var total float64
	var games int
	for _, g := range s.Games {
		total += g.AverageScore * float64(g.GamesCount)
		games += g.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}

// GetMedianScore weights each record's median by its game count, so it is
// exact only while nothing has been folded.
func (s *Stats) GetMedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var scores []float64
	for _, g := range s.Games {
		for i := 0; i < g.GamesCount; i++ {
			scores = append(scores, g.MedianScore)
		}
	}
	return median(scores)
}

func (s *Stats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}
	best := s.Games[0].MaxScore
	for _, g := range s.Games {
		best = max(best, g.MaxScore)
	}
	return best
}

func (s *Stats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := 0
	for _, g := range s.Games {
		total += g.GamesCount
	}
	return total
}

// GetAverageDuration returns the mean game length in seconds.
func (s *Stats) GetAverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var total float64
	var games int
	for _, g := range s.Games {
		total += g.AverageDuration * float64(g.GamesCount)
		games += g.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}

func (s *Stats) GetMaxDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}
	longest := s.Games[0].MaxDuration
	for _, g := range s.Games {
		longest = max(longest, g.MaxDuration)
	}
	return longest
}
