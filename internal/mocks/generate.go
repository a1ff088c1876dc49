// Package mocks provides mock implementations for testing the service layer.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockBookingRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking, nil)
package mocks

// Generate mock for UserRepository interface from internal/core package.
// This creates MockUserRepository with methods for all UserRepository interface methods:
// Create, GetByID, GetByEmail, List, UpdatePassword, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/guiatur/guiatur-api/internal/core UserRepository

// Generate mock for GuideRepository interface from internal/core package.
// This creates MockGuideRepository with methods for all GuideRepository interface methods:
// Create, GetByID, GetByUserID, List, Count, UpdateRating, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=guide_repository_mock.go github.com/guiatur/guiatur-api/internal/core GuideRepository

// Generate mock for TourRepository interface from internal/core package.
// This creates MockTourRepository with methods for all TourRepository interface methods:
// Create, GetByID, List, Count, Delete, ListLocations, ListTourismTypes
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=tour_repository_mock.go github.com/guiatur/guiatur-api/internal/core TourRepository

// Generate mock for BookingRepository interface from internal/core package.
// This creates MockBookingRepository with methods for all BookingRepository interface methods:
// Create, GetByID, List, UpdateStatus
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=booking_repository_mock.go github.com/guiatur/guiatur-api/internal/core BookingRepository

// Generate mock for FavoriteRepository interface from internal/core package.
// This creates MockFavoriteRepository with methods for all FavoriteRepository interface methods:
// Toggle, IsFavorite, ListByUser, ListGuidesByUser
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=favorite_repository_mock.go github.com/guiatur/guiatur-api/internal/core FavoriteRepository

// Generate mock for BookingNotifier interface from internal/core package.
// This creates MockBookingNotifier with methods for all BookingNotifier interface methods:
// NotifyBookingCreated
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=booking_notifier_mock.go github.com/guiatur/guiatur-api/internal/core BookingNotifier
