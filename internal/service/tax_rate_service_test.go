package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaxRate(t *testing.T) {
	ctx := context.Background()
	siteID := uuid.New()
	rates := newFakeRateRepo()
	svc := NewTaxRateService(rates, fakeTxManager{}, NopNotifier{})

	res, err := svc.Create(ctx, siteID, CreateTaxRateRequest{Title: "VAT", Rate: "20"})
	require.NoError(t, err)
	assert.Equal(t, "VAT", res.Title)
	assert.Equal(t, "20", res.Rate)

	stored, err := rates.FindByTitle(ctx, siteID, "VAT")
	require.NoError(t, err)
	assert.Equal(t, siteID, stored.SiteID)
}

func TestCreateTaxRateRejectsNegative(t *testing.T) {
	svc := NewTaxRateService(newFakeRateRepo(), fakeTxManager{}, NopNotifier{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateTaxRateRequest{Title: "Bad", Rate: "-5"})
	assert.ErrorIs(t, err, ErrNegativeRate)
}

func TestCreateTaxRateRejectsMalformed(t *testing.T) {
	svc := NewTaxRateService(newFakeRateRepo(), fakeTxManager{}, NopNotifier{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateTaxRateRequest{Title: "Bad", Rate: "twenty"})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), uuid.New(), CreateTaxRateRequest{
		Title: "Bad", Rate: "20", ZoneIDs: []string{"not-a-uuid"},
	})
	assert.Error(t, err)
}

func TestRateWritesNotify(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := NewTaxRateService(newFakeRateRepo(), fakeTxManager{}, notifier)

	created, err := svc.Create(ctx, uuid.New(), CreateTaxRateRequest{Title: "VAT", Rate: "20"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, uuid.MustParse(created.ID)))

	assert.Equal(t, []string{"tax_rate.changed", "tax_rate.deleted"}, notifier.events)
}

func TestZeroRateIsValid(t *testing.T) {
	svc := NewTaxRateService(newFakeRateRepo(), fakeTxManager{}, NopNotifier{})

	res, err := svc.Create(context.Background(), uuid.New(), CreateTaxRateRequest{Title: "Zero rate", Rate: "0"})
	require.NoError(t, err)
	assert.Equal(t, "0", res.Rate)
}
