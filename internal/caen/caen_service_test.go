package caen_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/TirlaP/lista-firme-backend/internal/cache"
	"github.com/TirlaP/lista-firme-backend/internal/caen"
	caenMock "github.com/TirlaP/lista-firme-backend/internal/caen/mock"
	"github.com/TirlaP/lista-firme-backend/internal/shared/apperror"
)

func setupCAENTest(t *testing.T) (caen.Service, *caenMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := caenMock.NewMockRepository(ctrl)
	return caen.NewService(repo, cache.NewMemory()), repo
}

func sampleCodes() []caen.CAEN {
	return []caen.CAEN{
		{Code: "6201", Name: "Activitati de realizare a software-ului la comanda", DivisionCode: "62", DivisionName: "Activitati de servicii in tehnologia informatiei", SectionCode: "J", SectionName: "Informatii si comunicatii"},
		{Code: "4711", Name: "Comert cu amanuntul in magazine nespecializate", DivisionCode: "47", DivisionName: "Comert cu amanuntul", SectionCode: "G", SectionName: "Comert"},
	}
}

func TestCAENService_WarmAndLookup(t *testing.T) {
	svc, repo := setupCAENTest(t)
	ctx := context.Background()

	repo.EXPECT().All(gomock.Any()).Return(sampleCodes(), nil)
	require.NoError(t, svc.Warm(ctx))

	t.Run("known code resolves from memory", func(t *testing.T) {
		got := svc.Lookup("6201")
		require.NotNil(t, got)
		assert.Equal(t, "62", got.DivisionCode)
	})

	t.Run("unknown code is nil, not an error", func(t *testing.T) {
		assert.Nil(t, svc.Lookup("9999"))
	})

	t.Run("list returns the full table ordered by code", func(t *testing.T) {
		opts, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, opts, 2)
		assert.Equal(t, "4711", opts[0].Value)
		assert.Equal(t, "6201", opts[1].Value)
	})

	t.Run("warm replaces the previous table", func(t *testing.T) {
		repo.EXPECT().All(gomock.Any()).Return(sampleCodes()[:1], nil)
		require.NoError(t, svc.Warm(ctx))
		assert.Nil(t, svc.Lookup("4711"))
		assert.NotNil(t, svc.Lookup("6201"))
	})
}

func TestCAENService_WarmFailure(t *testing.T) {
	svc, repo := setupCAENTest(t)

	repo.EXPECT().All(gomock.Any()).Return(nil, errors.New("connection refused"))
	err := svc.Warm(context.Background())
	assert.ErrorContains(t, err, "warm caen codes")
}

func TestCAENService_Search(t *testing.T) {
	svc, repo := setupCAENTest(t)
	ctx := context.Background()

	t.Run("results are shaped as dropdown options", func(t *testing.T) {
		repo.EXPECT().Search(gomock.Any(), "software").Return(sampleCodes()[:1], nil)

		opts, err := svc.Search(ctx, "software")
		require.NoError(t, err)
		require.Len(t, opts, 1)
		assert.Equal(t, "6201", opts[0].Value)
		assert.Equal(t, "6201 - Activitati de realizare a software-ului la comanda", opts[0].Label)
		assert.Equal(t, "62 - Activitati de servicii in tehnologia informatiei", opts[0].Details.Division)
		assert.Equal(t, "J - Informatii si comunicatii", opts[0].Details.Section)
	})

	t.Run("repeat query is served from cache", func(t *testing.T) {
		opts, err := svc.Search(ctx, "software")
		require.NoError(t, err)
		assert.Len(t, opts, 1)
	})

	t.Run("store failure maps to service unavailable", func(t *testing.T) {
		repo.EXPECT().Search(gomock.Any(), "x").Return(nil, errors.New("boom"))
		_, err := svc.Search(ctx, "x")
		require.Error(t, err)
		assert.Equal(t, 503, apperror.ToHTTP(err).Status)
	})
}

func TestCAENService_Get(t *testing.T) {
	svc, repo := setupCAENTest(t)
	ctx := context.Background()

	repo.EXPECT().All(gomock.Any()).Return(sampleCodes(), nil)
	require.NoError(t, svc.Warm(ctx))

	got, err := svc.Get(ctx, "4711")
	require.NoError(t, err)
	assert.Equal(t, "Comert cu amanuntul in magazine nespecializate", got.Name)

	_, err = svc.Get(ctx, "0000")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
