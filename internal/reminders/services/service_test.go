package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	etmodels "go-controls/internal/entitytypes/models"
	"go-controls/internal/reminders/models"
	"go-controls/pkg/handlers"
	"go-controls/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	types     []models.ReminderType
	reminders []models.Reminder

	beforeRenew func(guid string)
}

func (m *memStore) ReminderTypes(ctx context.Context, entityTypeGuid string) ([]models.ReminderType, error) {
	var out []models.ReminderType
	for _, t := range m.types {
		if t.EntityTypeGuid == entityTypeGuid && t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memStore) GetReminderType(ctx context.Context, guid string) (*models.ReminderType, error) {
	for i := range m.types {
		if m.types[i].Guid == guid {
			return &m.types[i], nil
		}
	}
	return nil, nil
}

func (m *memStore) Reminders(ctx context.Context, entityTypeGuid, entityGuid, personGuid string) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range m.reminders {
		if r.EntityGuid == entityGuid && r.AssignedToPersonGuid == personGuid {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) CompletedRenewing(ctx context.Context) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range m.reminders {
		if r.IsComplete && r.RenewPeriodDays > 0 {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) GetReminder(ctx context.Context, guid string) (*models.Reminder, error) {
	for i := range m.reminders {
		if m.reminders[i].Guid == guid {
			r := m.reminders[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memStore) InsertReminder(ctx context.Context, reminder *models.Reminder) error {
	m.reminders = append(m.reminders, *reminder)
	return nil
}

func (m *memStore) UpdateReminder(ctx context.Context, reminder *models.Reminder) error {
	for i := range m.reminders {
		if m.reminders[i].Guid == reminder.Guid {
			m.reminders[i] = *reminder
			return nil
		}
	}
	return fmt.Errorf("reminder %s not found", reminder.Guid)
}

func (m *memStore) RenewReminder(ctx context.Context, reminder *models.Reminder, previousCount int) (bool, error) {
	if m.beforeRenew != nil {
		m.beforeRenew(reminder.Guid)
	}
	for i := range m.reminders {
		stored := &m.reminders[i]
		if stored.Guid != reminder.Guid {
			continue
		}
		if !stored.IsComplete || stored.RenewPeriodDays <= 0 || stored.RenewCurrentCount != previousCount {
			return false, nil
		}
		stored.ReminderDate = reminder.ReminderDate
		stored.IsComplete = false
		stored.CompletedAt = nil
		stored.RenewCurrentCount = reminder.RenewCurrentCount
		stored.UpdatedAt = reminder.UpdatedAt
		return true, nil
	}
	return false, nil
}

func (m *memStore) DeleteReminder(ctx context.Context, guid string) error {
	kept := m.reminders[:0]
	for _, r := range m.reminders {
		if r.Guid != guid {
			kept = append(kept, r)
		}
	}
	m.reminders = kept
	return nil
}

type people map[string]bool

func (p people) LoadEntity(ctx context.Context, entityTypeGuid, entityGuid string) (*etmodels.EntityType, map[string]interface{}, error) {
	if !p[entityGuid] {
		return nil, nil, fmt.Errorf("person %s: %w", entityGuid, handlers.ErrNotFound)
	}
	return &etmodels.EntityType{Guid: entityTypeGuid}, map[string]interface{}{"guid": entityGuid}, nil
}

var (
	ted   = &security.Principal{User: &security.User{UserID: "u1", PersonGuid: "ted"}}
	cindy = &security.Principal{User: &security.User{UserID: "u2", PersonGuid: "cindy"}}
	day   = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
)

func newStore() *memStore {
	return &memStore{
		types: []models.ReminderType{
			{Guid: "rt-call", Name: "Phone Call", EntityTypeGuid: "person", Order: 1, IsActive: true},
			{Guid: "rt-visit", Name: "Visit", EntityTypeGuid: "person", Order: 0, IsActive: true, HighlightColor: "#c00"},
			{Guid: "rt-group", Name: "Group Check-in", EntityTypeGuid: "group", IsActive: true},
		},
		reminders: []models.Reminder{
			{Guid: "r1", ReminderTypeGuid: "rt-visit", EntityTypeGuid: "person", EntityGuid: "p1", AssignedToPersonGuid: "ted", ReminderDate: day},
			{Guid: "r2", ReminderTypeGuid: "rt-call", EntityTypeGuid: "person", EntityGuid: "p1", AssignedToPersonGuid: "cindy", ReminderDate: day},
		},
	}
}

func newService(store *memStore) *Service {
	s := NewService(store, people{"p1": true})
	s.now = func() time.Time { return day }
	return s
}

func TestService_GetReminders(t *testing.T) {
	s := newService(newStore())

	_, err := s.GetReminders(context.Background(), &security.Principal{}, "person", "p1")
	assert.True(t, errors.Is(err, handlers.ErrUnauthorized))

	result, err := s.GetReminders(context.Background(), ted, "person", "p1")
	require.NoError(t, err)
	require.Len(t, result.ReminderTypes, 2)
	assert.Equal(t, "Visit", result.ReminderTypes[0].Text)
	require.Len(t, result.Reminders, 1)
	assert.Equal(t, "r1", result.Reminders[0].Guid)
	assert.Equal(t, "Visit", result.Reminders[0].ReminderTypeName)
	assert.Equal(t, "#c00", result.Reminders[0].HighlightColor)
}

func TestService_AddReminder(t *testing.T) {
	valid := AddRequest{EntityTypeGuid: "person", EntityGuid: "p1", ReminderTypeGuid: "rt-call", ReminderDate: day}

	tests := []struct {
		name    string
		p       *security.Principal
		mutate  func(r *AddRequest)
		wantErr error
	}{
		{"anonymous", &security.Principal{}, nil, handlers.ErrUnauthorized},
		{"missing date", ted, func(r *AddRequest) { r.ReminderDate = time.Time{} }, handlers.ErrInvalid},
		{"negative renewal", ted, func(r *AddRequest) { r.RenewPeriodDays = -1 }, handlers.ErrInvalid},
		{"unknown type", ted, func(r *AddRequest) { r.ReminderTypeGuid = "rt-none" }, handlers.ErrNotFound},
		{"type for another entity type", ted, func(r *AddRequest) { r.ReminderTypeGuid = "rt-group" }, handlers.ErrInvalid},
		{"unknown entity", ted, func(r *AddRequest) { r.EntityGuid = "p9" }, handlers.ErrNotFound},
		{"valid", ted, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			req := valid
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			bag, err := newService(store).AddReminder(context.Background(), tt.p, req)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ted", bag.AssignedToPersonGuid)
			assert.Equal(t, "Phone Call", bag.ReminderTypeName)
			assert.Len(t, store.reminders, 3)
		})
	}
}

func TestService_ReminderActions(t *testing.T) {
	ctx := context.Background()

	t.Run("only the assignee may act", func(t *testing.T) {
		s := newService(newStore())
		assert.True(t, errors.Is(s.CompleteReminder(ctx, cindy, "r1"), handlers.ErrUnauthorized))
		assert.True(t, errors.Is(s.DeleteReminder(ctx, ted, "r2"), handlers.ErrUnauthorized))
		assert.True(t, errors.Is(s.CancelReminder(ctx, ted, "r404"), handlers.ErrNotFound))
	})

	t.Run("complete", func(t *testing.T) {
		store := newStore()
		require.NoError(t, newService(store).CompleteReminder(ctx, ted, "r1"))
		assert.True(t, store.reminders[0].IsComplete)
		require.NotNil(t, store.reminders[0].CompletedAt)
	})

	t.Run("cancel stops renewal", func(t *testing.T) {
		store := newStore()
		store.reminders[0].RenewPeriodDays = 7
		require.NoError(t, newService(store).CancelReminder(ctx, ted, "r1"))
		assert.False(t, store.reminders[0].IsRenewing())
	})

	t.Run("delete", func(t *testing.T) {
		store := newStore()
		require.NoError(t, newService(store).DeleteReminder(ctx, ted, "r1"))
		require.Len(t, store.reminders, 1)
		assert.Equal(t, "r2", store.reminders[0].Guid)
	})
}

func TestService_RenewCompleted(t *testing.T) {
	store := newStore()
	store.reminders = []models.Reminder{
		{Guid: "weekly", ReminderDate: day, IsComplete: true, RenewPeriodDays: 7, RenewMaxCount: 2, RenewCurrentCount: 1},
		{Guid: "done", ReminderDate: day, IsComplete: true, RenewPeriodDays: 7, RenewMaxCount: 2, RenewCurrentCount: 2},
		{Guid: "forever", ReminderDate: day, IsComplete: true, RenewPeriodDays: 30},
		{Guid: "open", ReminderDate: day, RenewPeriodDays: 7},
	}

	renewed, err := newService(store).RenewCompleted(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, renewed)

	weekly := store.reminders[0]
	assert.False(t, weekly.IsComplete)
	assert.Equal(t, day.AddDate(0, 0, 7), weekly.ReminderDate)
	assert.Equal(t, 2, weekly.RenewCurrentCount)

	assert.True(t, store.reminders[1].IsComplete, "no renewals left")
	assert.Equal(t, day.AddDate(0, 0, 30), store.reminders[2].ReminderDate)
	assert.Equal(t, day, store.reminders[3].ReminderDate)
}

func TestService_RenewCompletedSkipsRemindersChangedSinceRead(t *testing.T) {
	completed := func() models.Reminder {
		return models.Reminder{
			Guid: "r1", EntityTypeGuid: "person", EntityGuid: "p1", AssignedToPersonGuid: "ted",
			ReminderDate: day, IsComplete: true, RenewPeriodDays: 7, RenewMaxCount: 3, RenewCurrentCount: 1,
		}
	}

	tests := []struct {
		name   string
		change func(s *Service, store *memStore)
		check  func(t *testing.T, store *memStore)
	}{
		{
			name: "canceled",
			change: func(s *Service, store *memStore) {
				require.NoError(t, s.CancelReminder(context.Background(), ted, "r1"))
			},
			check: func(t *testing.T, store *memStore) {
				require.Len(t, store.reminders, 1)
				assert.False(t, store.reminders[0].IsRenewing())
				assert.Equal(t, day, store.reminders[0].ReminderDate)
			},
		},
		{
			name: "renewed elsewhere",
			change: func(s *Service, store *memStore) {
				store.reminders[0].RenewCurrentCount = 2
			},
			check: func(t *testing.T, store *memStore) {
				require.Len(t, store.reminders, 1)
				assert.Equal(t, 2, store.reminders[0].RenewCurrentCount)
				assert.Equal(t, day, store.reminders[0].ReminderDate)
			},
		},
		{
			name: "deleted",
			change: func(s *Service, store *memStore) {
				require.NoError(t, s.DeleteReminder(context.Background(), ted, "r1"))
			},
			check: func(t *testing.T, store *memStore) {
				assert.Empty(t, store.reminders)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			store.reminders = []models.Reminder{completed()}
			s := newService(store)
			store.beforeRenew = func(string) {
				store.beforeRenew = nil
				tt.change(s, store)
			}

			renewed, err := s.RenewCompleted(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 0, renewed)
			tt.check(t, store)
		})
	}
}

func TestRenewer_StartRejectsBadSchedule(t *testing.T) {
	r := NewRenewer(newService(newStore()), "not a schedule")
	assert.Error(t, r.Start(context.Background()))
	r.Stop()

	r = NewRenewer(newService(newStore()), "0 0 3 * * *")
	require.NoError(t, r.Start(context.Background()))
	assert.Error(t, r.Start(context.Background()))
	r.Stop()
}
