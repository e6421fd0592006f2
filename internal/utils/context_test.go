// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/mentem-portal/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestContextKeyString(t *testing.T) {
	if SessionClaimsCtxKey.String() != "sessionClaims" {
		t.Errorf("expected 'sessionClaims', got '%s'", SessionClaimsCtxKey.String())
	}
}

func TestGetSessionClaimsFromContext_Success(t *testing.T) {
	claims := &models.SessionClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}, ConsentGiven: true}
	ctx := WithSessionClaims(context.Background(), claims)

	got, ok := GetSessionClaimsFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != claims {
		t.Errorf("expected the stored claims pointer, got %v", got)
	}

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != "user-1" {
		t.Errorf("expected user-1, got %q (ok=%v)", userID, ok)
	}
}

func TestGetSessionClaimsFromContext_Missing(t *testing.T) {
	if _, ok := GetSessionClaimsFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestGetSessionClaimsFromContext_NilPointer(t *testing.T) {
	ctx := WithSessionClaims(context.Background(), nil)

	if _, ok := GetSessionClaimsFromContext(ctx); ok {
		t.Fatal("expected ok=false for nil claims, got true")
	}
}

func TestGetSessionClaimsFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionClaimsCtxKey, "not-claims")

	if _, ok := GetSessionClaimsFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetUserIDFromContext_EmptySubject(t *testing.T) {
	ctx := WithSessionClaims(context.Background(), &models.SessionClaims{})

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty subject, got true")
	}
}
