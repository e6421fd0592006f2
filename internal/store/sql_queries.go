package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/mentem-portal/models"
)

const usersTable = "users"

// userColumns is the column order shared by every SELECT and scanUser.
var userColumns = []string{
	"user_id",
	"email",
	"password_hash",
	"first_name",
	"last_name",
	"gender",
	"dob",
	"zip_code",
	"insurance_company",
	"service_preference",
	"emergency_name",
	"emergency_phone",
	"consent_given",
	"consent_given_at",
	"created_at",
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.UserID,
			user.Email,
			user.PasswordHash,
			user.FirstName,
			user.LastName,
			user.Gender,
			user.DOB,
			user.ZipCode,
			user.InsuranceCompany,
			user.ServicePreference,
			user.EmergencyName,
			user.EmergencyPhone,
			user.ConsentGiven,
			user.ConsentGivenAt,
			user.CreatedAt,
		).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

// buildUpdateConsentQuery only ever writes TRUE, so consent can not be
// revoked through it. COALESCE keeps the first consent time.
func buildUpdateConsentQuery(b sq.StatementBuilderType, userID string, at time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("consent_given", true).
		Set("consent_given_at", sq.Expr("COALESCE(consent_given_at, ?)", at)).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
