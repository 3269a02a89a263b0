package services

import (
	"context"
	"testing"
	"time"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberServiceCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(repositories.NewMemberRepository(db))
	ctx := context.Background()

	member, err := svc.Create(ctx, &CreateMemberInput{
		FullName:       "Jane Doe",
		Email:          "jane@example.com",
		Phone:          "555-0101",
		Address:        "12 Main St",
		Age:            34,
		Gender:         "Female",
		MembershipType: "Quarterly",
		JoinDate:       "2026-08-30",
		ExpiryDate:     "2026-11-30",
	})
	require.NoError(t, err)
	assert.NotZero(t, member.MemberID)
	assert.Equal(t, models.MemberStatusActive, member.Status)

	// The stored record echoes the input
	list, _, err := svc.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Jane Doe", list[0].FullName)
	assert.Equal(t, "jane@example.com", list[0].Email)
	assert.Equal(t, "34", list[0].Age)
	assert.Equal(t, "Quarterly", list[0].MembershipType)
	assert.Equal(t, models.MemberStatusActive, list[0].Status)
}

func TestMemberServiceCreateDefaultsDates(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(repositories.NewMemberRepository(db))

	member, err := svc.Create(context.Background(), &CreateMemberInput{
		FullName:       "John Doe",
		Email:          "john@example.com",
		Age:            40,
		MembershipType: "Monthly",
	})
	require.NoError(t, err)

	today := time.Now().Format(dateLayout)
	nextMonth := time.Now().AddDate(0, 1, 0).Format(dateLayout)
	assert.Equal(t, today, member.JoinDate)
	assert.Equal(t, nextMonth, member.ExpiryDate)
}

func TestMemberServiceCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(repositories.NewMemberRepository(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateMemberInput{
		Email:          "no-name@example.com",
		Age:            20,
		MembershipType: "Monthly",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(ctx, &CreateMemberInput{
		FullName:       "No Email",
		Age:            20,
		MembershipType: "Monthly",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(ctx, &CreateMemberInput{
		FullName:       "Bad Plan",
		Email:          "plan@example.com",
		Age:            20,
		MembershipType: "Weekly",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMembershipType)

	// No partial inserts on rejected input
	members, _, err := svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestMemberServiceListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(repositories.NewMemberRepository(db))
	ctx := context.Background()

	older := seedTestMember(t, db, "older", models.MemberStatusActive)
	newer := seedTestMember(t, db, "newer", models.MemberStatusActive)

	list, total, err := svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, newer.MemberID, list[0].MemberID)
	assert.Equal(t, older.MemberID, list[1].MemberID)
}

func TestMemberServiceUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(repositories.NewMemberRepository(db))
	ctx := context.Background()

	member := seedTestMember(t, db, "toggle", models.MemberStatusActive)

	updated, err := svc.UpdateStatus(ctx, member.MemberID, models.MemberStatusInactive)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = svc.UpdateStatus(ctx, member.MemberID, models.MemberStatusActive)
	require.NoError(t, err)
	assert.True(t, updated)

	// Unknown member
	updated, err = svc.UpdateStatus(ctx, 9999, models.MemberStatusInactive)
	require.NoError(t, err)
	assert.False(t, updated)

	// Unknown status is rejected before touching storage
	_, err = svc.UpdateStatus(ctx, member.MemberID, "SUSPENDED")
	assert.ErrorIs(t, err, domain.ErrInvalidMemberStatus)
}
