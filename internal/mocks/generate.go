// Package mocks provides mock implementations for testing the stylist client.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockAuthAPI(ctrl)
//	api.EXPECT().Me(gomock.Any()).Return(user, nil)
package mocks

// Generate mock for Navigator interface from internal/ports package.
// This creates MockNavigator with methods: Navigate, CurrentPath
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=navigator_mock.go github.com/target/stylist-web/internal/ports Navigator

// Generate mock for CredentialStore interface from internal/ports package.
// This creates MockCredentialStore with methods: Token, Store, Clear
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=credential_store_mock.go github.com/target/stylist-web/internal/ports CredentialStore

// Generate mock for AuthAPI interface from internal/ports package.
// This creates MockAuthAPI with methods for all AuthAPI interface methods:
// Login, Signup, SocialLogin, Logout, Me, ForgotPassword, ResetPassword, UpdateProfile, ChangePassword
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_api_mock.go github.com/target/stylist-web/internal/ports AuthAPI

// Generate mock for WorkshopAPI interface from internal/ports package.
// This creates MockWorkshopAPI with methods: List, Get, Register, Unregister, MyRegistrations
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=workshop_api_mock.go github.com/target/stylist-web/internal/ports WorkshopAPI

// Generate mock for Notifier interface from internal/observability/notify package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=notifier_mock.go github.com/target/stylist-web/internal/observability/notify Notifier

// Generate mocks for the content surfaces from internal/ports package.
// MockTutorialAPI, MockGalleryAPI and MockCommunityAPI back the tutorial, gallery and community service tests.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=tutorial_api_mock.go github.com/target/stylist-web/internal/ports TutorialAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=gallery_api_mock.go github.com/target/stylist-web/internal/ports GalleryAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=community_api_mock.go github.com/target/stylist-web/internal/ports CommunityAPI
