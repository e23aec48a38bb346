package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"jobmatch/internal/domain/assessment"
	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/event"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/infrastructure/persistence/memory"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(ev event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

// mapCache is a MatchCache over a map; patterns only support a trailing *.
type mapCache struct {
	mu      sync.Mutex
	items   map[string][]byte
	gets    int
	hits    int
	deleted []string
}

func newMapCache() *mapCache {
	return &mapCache{items: make(map[string][]byte)}
}

func (c *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, out)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = b
	return nil
}

func (c *mapCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
	return nil
}

func newSeededStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.New()

	users := []user.User{
		{ID: "u1", Name: "Alice Applicant", Email: "alice@example.com", Role: user.RoleApplicant},
		{ID: "u2", Name: "Evan Employer", Email: "evan@company.com", Role: user.RoleEmployer},
		{ID: "admin", Name: "Ada Admin", Email: "admin@example.com", Role: user.RoleAdmin},
	}
	for _, u := range users {
		if err := s.Users().Create(ctx, u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	jobs := []job.Job{
		{ID: "j1", Title: "Frontend Developer", Company: "TechNova", Location: "Remote", Skills: []string{"React", "JavaScript", "CSS"}, MinScore: 50},
		{ID: "j2", Title: "Backend Engineer", Company: "DataForge", Location: "NYC", Skills: []string{"Node.js", "Express", "SQL"}, MinScore: 60},
		{ID: "j3", Title: "Full Stack Developer", Company: "CloudLabs", Location: "SF", Skills: []string{"Node.js", "React", "PostgreSQL"}, MinScore: 70},
		{ID: "j4", Title: "DevOps Engineer", Company: "OpsWorks", Location: "Remote", Skills: []string{"AWS", "Docker", "CI/CD"}, MinScore: 65},
	}
	for _, j := range jobs {
		if err := s.Jobs().Create(ctx, j); err != nil {
			t.Fatalf("seed job: %v", err)
		}
	}

	cands := []candidate.Candidate{
		{ID: "u1", Name: "Alice Applicant", Email: "alice@example.com", Role: user.RoleApplicant, Skills: []string{"React", "Node.js"}, Score: 78},
		{ID: "u3", Name: "Bob Builder", Email: "bob@example.com", Role: user.RoleApplicant, Skills: []string{"Docker", "AWS"}, Score: 65},
		{ID: "u4", Name: "Cara Coder", Email: "cara@example.com", Role: user.RoleApplicant, Skills: []string{"TypeScript", "React"}, Score: 88},
	}
	for _, c := range cands {
		if err := s.Candidates().Create(ctx, c); err != nil {
			t.Fatalf("seed candidate: %v", err)
		}
	}

	def := assessment.Definition{
		ID:              "a1",
		Title:           "Frontend Basics",
		DurationMinutes: 20,
		Questions: []assessment.Question{
			{ID: "q1", Type: "mcq", Options: []string{"<ol>", "<ul>", "<li>", "<dl>"}, CorrectOptionIndex: 1},
			{ID: "q2", Type: "mcq", Options: []string{"font-color", "text-color", "color", "font-style"}, CorrectOptionIndex: 2},
			{ID: "q3", Type: "mcq", Options: []string{"useState", "useMemo", "useContext", "useRef"}, CorrectOptionIndex: 0},
		},
	}
	if err := s.Assessments().CreateDefinition(ctx, def); err != nil {
		t.Fatalf("seed assessment: %v", err)
	}

	return s
}

func intPtr(v int) *int { return &v }
