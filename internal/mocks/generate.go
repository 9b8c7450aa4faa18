// Package mocks provides mock implementations for testing the gateway services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the backend gateway interfaces. The mocks are generated using go:generate
// directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	orders := mocks.NewMockOrderGateway(ctrl)
//	orders.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
package mocks

// Generate mocks for the backend gateway interfaces from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=gateways_mock.go github.com/bookcourier/ui-gateway/internal/ports UserGateway,BookGateway,OrderGateway,WishlistGateway,ReviewGateway,AdminGateway,PaymentGateway
