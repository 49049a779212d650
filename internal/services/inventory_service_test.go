package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/maynagashev/partsorganizer/internal/mocks"
	"github.com/maynagashev/partsorganizer/internal/models"
	"github.com/maynagashev/partsorganizer/internal/repository"
	"github.com/maynagashev/partsorganizer/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewInventoryService(t *testing.T) {
	svc := services.NewInventoryService(new(mocks.LocationRepository), new(mocks.PartRepository))
	require.NotNil(t, svc)
}

func TestInventoryService_CreateLocation(t *testing.T) {
	ctx := context.Background()
	req := models.CreateLocationRequest{
		LocationName: "Shelf1",
		Container:    "Bin A",
		Row:          "1",
		Position:     "Left",
	}
	createdLocation := &models.Location{
		ID:           1,
		LocationName: "Shelf1",
		Container:    "Bin A",
		Row:          "1",
		Position:     "Left",
	}

	tests := []struct {
		name             string
		mockSetup        func(locationRepo *mocks.LocationRepository)
		expectedLocation *models.Location
		expectedError    error
	}{
		{
			name: "Успешное создание",
			mockSetup: func(locationRepo *mocks.LocationRepository) {
				locationRepo.EXPECT().
					CreateLocation(ctx, mock.AnythingOfType("*models.Location")).
					Return(int64(1), nil).Once()
				locationRepo.EXPECT().
					GetLocationByID(ctx, int64(1)).
					Return(createdLocation, nil).Once()
			},
			expectedLocation: createdLocation,
			expectedError:    nil,
		},
		{
			name: "Имя места хранения занято",
			mockSetup: func(locationRepo *mocks.LocationRepository) {
				locationRepo.EXPECT().
					CreateLocation(ctx, mock.AnythingOfType("*models.Location")).
					Return(int64(0), repository.ErrLocationNameTaken).Once()
			},
			expectedLocation: nil,
			expectedError:    services.ErrLocationNameTaken,
		},
		{
			name: "Ошибка репозитория при создании",
			mockSetup: func(locationRepo *mocks.LocationRepository) {
				locationRepo.EXPECT().
					CreateLocation(ctx, mock.AnythingOfType("*models.Location")).
					Return(int64(0), errors.New("some db error")).Once()
			},
			expectedLocation: nil,
			expectedError:    errors.New("внутренняя ошибка сервера при создании места хранения"),
		},
		{
			name: "Ошибка чтения созданной записи",
			mockSetup: func(locationRepo *mocks.LocationRepository) {
				locationRepo.EXPECT().
					CreateLocation(ctx, mock.AnythingOfType("*models.Location")).
					Return(int64(1), nil).Once()
				locationRepo.EXPECT().
					GetLocationByID(ctx, int64(1)).
					Return(nil, errors.New("some db error")).Once()
			},
			expectedLocation: nil,
			expectedError:    errors.New("внутренняя ошибка сервера при чтении места хранения"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locationRepo := new(mocks.LocationRepository)
			tt.mockSetup(locationRepo)

			svc := services.NewInventoryService(locationRepo, new(mocks.PartRepository))
			location, err := svc.CreateLocation(ctx, req)

			assert.Equal(t, tt.expectedLocation, location)
			if tt.expectedError != nil {
				require.Error(t, err)
				require.EqualError(t, err, tt.expectedError.Error())
			} else {
				require.NoError(t, err)
			}

			locationRepo.AssertExpectations(t)
		})
	}
}

func TestInventoryService_GetLocation(t *testing.T) {
	ctx := context.Background()
	testLocation := &models.Location{ID: 1, LocationName: "Shelf1"}

	t.Run("Успешное получение", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		locationRepo.EXPECT().GetLocationByID(ctx, int64(1)).Return(testLocation, nil).Once()

		svc := services.NewInventoryService(locationRepo, new(mocks.PartRepository))
		location, err := svc.GetLocation(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, testLocation, location)
		locationRepo.AssertExpectations(t)
	})

	t.Run("Место хранения не найдено", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		locationRepo.EXPECT().GetLocationByID(ctx, int64(999)).Return(nil, repository.ErrLocationNotFound).Once()

		svc := services.NewInventoryService(locationRepo, new(mocks.PartRepository))
		location, err := svc.GetLocation(ctx, 999)

		require.ErrorIs(t, err, services.ErrLocationNotFound)
		assert.Nil(t, location)
		locationRepo.AssertExpectations(t)
	})
}

func TestInventoryService_ListPartsForLocation(t *testing.T) {
	ctx := context.Background()
	testLocation := &models.Location{ID: 1, LocationName: "Shelf1"}
	testParts := []models.Part{
		{ID: 2, PartName: "Nut", LocationName: "Shelf1"},
		{ID: 1, PartName: "Bolt", LocationName: "Shelf1"},
	}

	t.Run("Детали существующего места", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		partRepo := new(mocks.PartRepository)
		locationRepo.EXPECT().GetLocationByID(ctx, int64(1)).Return(testLocation, nil).Once()
		partRepo.EXPECT().GetPartsByLocation(ctx, "Shelf1").Return(testParts, nil).Once()

		svc := services.NewInventoryService(locationRepo, partRepo)
		parts, err := svc.ListPartsForLocation(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, testParts, parts)
		locationRepo.AssertExpectations(t)
		partRepo.AssertExpectations(t)
	})

	t.Run("Место не найдено - детали не запрашиваются", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		partRepo := new(mocks.PartRepository)
		locationRepo.EXPECT().GetLocationByID(ctx, int64(999)).Return(nil, repository.ErrLocationNotFound).Once()

		svc := services.NewInventoryService(locationRepo, partRepo)
		parts, err := svc.ListPartsForLocation(ctx, 999)

		require.ErrorIs(t, err, services.ErrLocationNotFound)
		assert.Nil(t, parts)
		locationRepo.AssertExpectations(t)
		partRepo.AssertExpectations(t)
	})
}

func TestInventoryService_CreatePart(t *testing.T) {
	ctx := context.Background()
	req := models.CreatePartRequest{
		PartName:     "Bolt",
		PartDetails:  "M6x20",
		LocationName: "Shelf1",
		Container:    "Bin A",
		Row:          "1",
		Position:     "Left",
	}
	createdPart := &models.Part{
		ID:           1,
		PartName:     "Bolt",
		PartDetails:  "M6x20",
		LocationName: "Shelf1",
		Container:    "Bin A",
		Row:          "1",
		Position:     "Left",
	}

	tests := []struct {
		name          string
		mockSetup     func(partRepo *mocks.PartRepository)
		expectedPart  *models.Part
		expectedError error
	}{
		{
			name: "Успешное создание",
			mockSetup: func(partRepo *mocks.PartRepository) {
				partRepo.EXPECT().
					CreatePart(ctx, mock.AnythingOfType("*models.Part")).
					Return(int64(1), nil).Once()
				partRepo.EXPECT().
					GetPartByID(ctx, int64(1)).
					Return(createdPart, nil).Once()
			},
			expectedPart:  createdPart,
			expectedError: nil,
		},
		{
			name: "Место хранения не существует - вставка не проходит",
			mockSetup: func(partRepo *mocks.PartRepository) {
				partRepo.EXPECT().
					CreatePart(ctx, mock.AnythingOfType("*models.Part")).
					Return(int64(0), repository.ErrLocationNotFound).Once()
			},
			expectedPart:  nil,
			expectedError: services.ErrLocationNotFound,
		},
		{
			name: "Ошибка репозитория при создании",
			mockSetup: func(partRepo *mocks.PartRepository) {
				partRepo.EXPECT().
					CreatePart(ctx, mock.AnythingOfType("*models.Part")).
					Return(int64(0), errors.New("some db error")).Once()
			},
			expectedPart:  nil,
			expectedError: errors.New("внутренняя ошибка сервера при создании детали"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partRepo := new(mocks.PartRepository)
			tt.mockSetup(partRepo)

			svc := services.NewInventoryService(new(mocks.LocationRepository), partRepo)
			part, err := svc.CreatePart(ctx, req)

			assert.Equal(t, tt.expectedPart, part)
			if tt.expectedError != nil {
				require.Error(t, err)
				require.EqualError(t, err, tt.expectedError.Error())
			} else {
				require.NoError(t, err)
			}

			partRepo.AssertExpectations(t)
		})
	}
}

func TestInventoryService_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("ListLocations - успех", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		expected := []models.Location{{ID: 2, LocationName: "Shelf2"}, {ID: 1, LocationName: "Shelf1"}}
		locationRepo.EXPECT().GetLocations(ctx).Return(expected, nil).Once()

		svc := services.NewInventoryService(locationRepo, new(mocks.PartRepository))
		locations, err := svc.ListLocations(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, locations)
	})

	t.Run("ListLocations - ошибка репозитория", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		locationRepo.EXPECT().GetLocations(ctx).Return(nil, errors.New("some db error")).Once()

		svc := services.NewInventoryService(locationRepo, new(mocks.PartRepository))
		locations, err := svc.ListLocations(ctx)

		require.Error(t, err)
		assert.Nil(t, locations)
	})

	t.Run("ListParts - успех", func(t *testing.T) {
		partRepo := new(mocks.PartRepository)
		expected := []models.Part{{ID: 1, PartName: "Bolt"}}
		partRepo.EXPECT().GetParts(ctx).Return(expected, nil).Once()

		svc := services.NewInventoryService(new(mocks.LocationRepository), partRepo)
		parts, err := svc.ListParts(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, parts)
	})

	t.Run("ListPartsByLocationName - успех", func(t *testing.T) {
		partRepo := new(mocks.PartRepository)
		expected := []models.Part{{ID: 1, PartName: "Bolt", LocationName: "Shelf1"}}
		partRepo.EXPECT().GetPartsByLocation(ctx, "Shelf1").Return(expected, nil).Once()

		svc := services.NewInventoryService(new(mocks.LocationRepository), partRepo)
		parts, err := svc.ListPartsByLocationName(ctx, "Shelf1")

		require.NoError(t, err)
		assert.Equal(t, expected, parts)
	})
}

func TestInventoryService_GetPart(t *testing.T) {
	ctx := context.Background()
	testPart := &models.Part{ID: 1, PartName: "Bolt", LocationName: "Shelf1"}

	t.Run("Успешное получение", func(t *testing.T) {
		partRepo := new(mocks.PartRepository)
		partRepo.EXPECT().GetPartByID(ctx, int64(1)).Return(testPart, nil).Once()

		svc := services.NewInventoryService(new(mocks.LocationRepository), partRepo)
		part, err := svc.GetPart(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, testPart, part)
	})

	t.Run("Деталь не найдена", func(t *testing.T) {
		partRepo := new(mocks.PartRepository)
		partRepo.EXPECT().GetPartByID(ctx, int64(999)).Return(nil, repository.ErrPartNotFound).Once()

		svc := services.NewInventoryService(new(mocks.LocationRepository), partRepo)
		part, err := svc.GetPart(ctx, 999)

		require.ErrorIs(t, err, services.ErrPartNotFound)
		assert.Nil(t, part)
	})
}
