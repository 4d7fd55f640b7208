package staff

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	members map[uuid.UUID]*Member
	getErr  error
}

func newMockRepo() *mockRepo {
	return &mockRepo{members: make(map[uuid.UUID]*Member)}
}

func (m *mockRepo) Create(_ context.Context, s *Member) error {
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	m.members[s.ID] = s
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Member, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s, ok := m.members[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Member, int, error) {
	var result []*Member
	for _, s := range m.members {
		result = append(result, s)
	}
	return result, len(result), nil
}

func TestRegister(t *testing.T) {
	svc := NewService(newMockRepo())
	m := &Member{Name: "Dana Alvarez", Role: RoleCaseManager, Email: "dana@example.org"}
	if err := svc.Register(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
}

func TestRegister_NameRequired(t *testing.T) {
	svc := NewService(newMockRepo())
	m := &Member{Role: RoleVolunteer, Email: "v@example.org"}
	if err := svc.Register(context.Background(), m); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestRegister_EmailRequired(t *testing.T) {
	svc := NewService(newMockRepo())
	m := &Member{Name: "Dana Alvarez", Role: RoleVolunteer}
	if err := svc.Register(context.Background(), m); err == nil {
		t.Error("expected error for missing email")
	}
}

func TestRegister_EmailShape(t *testing.T) {
	svc := NewService(newMockRepo())
	m := &Member{Name: "Dana Alvarez", Role: RoleVolunteer, Email: "not-an-email"}
	if err := svc.Register(context.Background(), m); err == nil {
		t.Error("expected error for malformed email")
	}
}

func TestRegister_UnknownRole(t *testing.T) {
	svc := NewService(newMockRepo())
	m := &Member{Name: "Dana Alvarez", Role: "Director", Email: "dana@example.org"}
	if err := svc.Register(context.Background(), m); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range Roles {
		if !ValidRole(r) {
			t.Errorf("expected %q to be valid", r)
		}
	}
	if ValidRole("case manager") {
		t.Error("role matching should be exact")
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Get(context.Background(), uuid.New()); err == nil {
		t.Error("expected error for unknown staff member")
	}
}
