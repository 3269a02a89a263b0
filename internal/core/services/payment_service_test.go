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

func TestPaymentServiceCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(repositories.NewPaymentRepository(db))
	ctx := context.Background()

	member := seedTestMember(t, db, "payer", models.MemberStatusActive)

	payment, err := svc.Create(ctx, &CreatePaymentInput{
		MemberID:    member.MemberID,
		Amount:      1500.50,
		PaymentDate: "2026-08-15",
		PaymentType: "Cash",
		Month:       "August",
		Status:      models.PaymentStatusPaid,
	})
	require.NoError(t, err)
	assert.NotZero(t, payment.PaymentID)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)

	list, total, err := svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "payer", list[0].MemberName)
	assert.Equal(t, 1500.50, list[0].Amount)
}

func TestPaymentServiceCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(repositories.NewPaymentRepository(db))

	member := seedTestMember(t, db, "defaults", models.MemberStatusActive)

	payment, err := svc.Create(context.Background(), &CreatePaymentInput{
		MemberID: member.MemberID,
		Amount:   200,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Equal(t, time.Now().Format(dateLayout), payment.PaymentDate)
}

func TestPaymentServiceCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(repositories.NewPaymentRepository(db))
	ctx := context.Background()

	member := seedTestMember(t, db, "strict", models.MemberStatusActive)

	_, err := svc.Create(ctx, &CreatePaymentInput{
		MemberID: member.MemberID,
		Amount:   100,
		Status:   "REFUNDED",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentStatus)

	_, err = svc.Create(ctx, &CreatePaymentInput{
		Amount: 100,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Unknown member slips past validation but the foreign key stops it
	_, err = svc.Create(ctx, &CreatePaymentInput{
		MemberID: 9999,
		Amount:   100,
	})
	assert.Error(t, err)
}

func TestPaymentServiceMarkPaid(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(repositories.NewPaymentRepository(db))
	ctx := context.Background()

	member := seedTestMember(t, db, "pending", models.MemberStatusActive)
	payment, err := svc.Create(ctx, &CreatePaymentInput{
		MemberID: member.MemberID,
		Amount:   300,
	})
	require.NoError(t, err)

	updated, err := svc.MarkPaid(ctx, payment.PaymentID)
	require.NoError(t, err)
	assert.True(t, updated)

	// Already PAID: no rows affected
	updated, err = svc.MarkPaid(ctx, payment.PaymentID)
	require.NoError(t, err)
	assert.False(t, updated)

	// Unknown payment
	updated, err = svc.MarkPaid(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, updated)
}
