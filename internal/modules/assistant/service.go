package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"meetspace/internal/modules/catalog"
)

// Generator is the text-completion capability used for criteria extraction.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// RoomFinder runs the structured availability search the extracted criteria
// feed into.
type RoomFinder interface {
	FindAvailable(ctx context.Context, q catalog.AvailabilityQuery) ([]catalog.RoomSummary, error)
}

const extractionPrompt = `You are a helpful assistant that extracts structured room booking information
from natural language. Always respond in compact JSON format with only these fields:

{
  "date": "YYYY-MM-DD",
  "starttime": "HH:MM",
  "endtime": "HH:MM",
  "capacity": number,
  "equipment": ["item1", "item2"]
}

If a field is missing in the user request, use null or an empty array (for equipment).
When a future date is asked in words, give the date referring to today's date. Ex. Next Monday date should be the next Monday from today in date format.
Today is %s.
No explanation, no extra text.
Query: %s`

// BookingCriteria is the structured form of a natural-language booking request.
// Pointer fields are nil when the request did not mention them.
type BookingCriteria struct {
	Date      *string  `json:"date"`
	StartTime *string  `json:"starttime"`
	EndTime   *string  `json:"endtime"`
	Capacity  *int     `json:"capacity"`
	Equipment []string `json:"equipment"`
}

type Service struct {
	gen   Generator
	rooms RoomFinder
}

func NewService(gen Generator, rooms RoomFinder) *Service {
	return &Service{gen: gen, rooms: rooms}
}

// Extract maps a free-form booking request to structured criteria.
func (s *Service) Extract(ctx context.Context, query string) (*BookingCriteria, error) {
	prompt := fmt.Sprintf(extractionPrompt, time.Now().Format("2006-01-02"), query)

	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extracting booking criteria: %w", err)
	}

	var criteria BookingCriteria
	if err := json.Unmarshal([]byte(stripFences(raw)), &criteria); err != nil {
		return nil, fmt.Errorf("parsing extracted criteria: %w", err)
	}
	return &criteria, nil
}

// Suggest chains extraction into the availability search.
func (s *Service) Suggest(ctx context.Context, query string) (*BookingCriteria, []catalog.RoomSummary, error) {
	criteria, err := s.Extract(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	q := catalog.AvailabilityQuery{Equipment: criteria.Equipment}
	if criteria.Capacity != nil {
		q.Capacity = *criteria.Capacity
	}
	// A time window only filters when the request yielded all three parts;
	// otherwise the search degrades to capacity/equipment.
	if criteria.Date != nil && criteria.StartTime != nil && criteria.EndTime != nil {
		q.Date = *criteria.Date
		q.From = *criteria.StartTime
		q.To = *criteria.EndTime
	}

	rooms, err := s.rooms.FindAvailable(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	return criteria, rooms, nil
}

// stripFences removes a markdown code fence the model may wrap its JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
