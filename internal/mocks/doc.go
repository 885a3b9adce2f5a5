// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of the store and auth interfaces,
// facilitating consistent and DRY testing across the codebase. Instead of
// defining inline mocks in individual test files, these standardized mock
// implementations can be reused.
//
// Usage:
//
// Import the mocks package in your test file and create the required mock:
//
//	import "github.com/phrazzld/mesto-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    jwtService := &mocks.MockJWTService{
//	        ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	            return &auth.Claims{UserID: someID}, nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
//
// Each mock struct exposes a function field per interface method; when a
// function field is nil, a simple in-memory default implementation is used.
package mocks
