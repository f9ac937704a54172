package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userRepo "quickcowork/database/repository/user"
	"quickcowork/models"
	"quickcowork/utils"
)

func testUserService() *DefaultUserService {
	return &DefaultUserService{Repo: userRepo.NewMemoryUserRepo()}
}

func TestSignUpIssuesProfileAndToken(t *testing.T) {
	svc := testUserService()

	resp, err := svc.SignUp("owner@example.com", "secret123", models.RoleOwner, "Priya")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "owner@example.com", resp.Email)
	assert.Equal(t, models.RoleOwner, resp.Role)
	assert.Equal(t, "Priya", resp.Name)
	assert.NotEmpty(t, resp.Avatar)

	claims, err := utils.ExtractClaims(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)
	assert.Equal(t, "owner", claims.Role)
}

func TestSignUpDefaultsToRenterAndDerivesName(t *testing.T) {
	svc := testUserService()

	resp, err := svc.SignUp("Dev@Example.com", "secret123", "superuser", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleRenter, resp.Role)
	assert.Equal(t, "dev", resp.Name)
	assert.Equal(t, "dev@example.com", resp.Email)
}

func TestSignUpRejectsMalformedEmail(t *testing.T) {
	svc := testUserService()

	_, err := svc.SignUp("not-an-email", "secret123", models.RoleRenter, "")
	assert.Equal(t, ErrMalformedEmail, err)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	svc := testUserService()

	_, err := svc.SignUp("dup@example.com", "secret123", models.RoleRenter, "")
	require.NoError(t, err)

	_, err = svc.SignUp("dup@example.com", "other456", models.RoleOwner, "")
	assert.Equal(t, ErrEmailTaken, err)
}

func TestSignInErrorTaxonomy(t *testing.T) {
	svc := testUserService()
	_, err := svc.SignUp("renter@example.com", "secret123", models.RoleRenter, "")
	require.NoError(t, err)

	t.Run("malformed email", func(t *testing.T) {
		_, err := svc.SignIn("nope", "secret123")
		assert.Equal(t, ErrMalformedEmail, err)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := svc.SignIn("ghost@example.com", "secret123")
		assert.Equal(t, ErrUserNotFound, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.SignIn("renter@example.com", "wrongpass")
		assert.Equal(t, ErrWrongCredential, err)
	})

	t.Run("success", func(t *testing.T) {
		resp, err := svc.SignIn("renter@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, models.RoleRenter, resp.Role)
		assert.NotEmpty(t, resp.Token)
	})
}

func TestSignInRateLimited(t *testing.T) {
	svc := testUserService()
	_, err := svc.SignUp("busy@example.com", "secret123", models.RoleRenter, "")
	require.NoError(t, err)

	// Burn through the attempt budget.
	var last error
	for i := 0; i < 10; i++ {
		_, last = svc.SignIn("busy@example.com", "wrongpass")
		if last == ErrRateLimited {
			break
		}
	}
	assert.Equal(t, ErrRateLimited, last)
}

func TestDeleteUser(t *testing.T) {
	svc := testUserService()
	resp, err := svc.SignUp("gone@example.com", "secret123", models.RoleRenter, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(resp.ID))

	_, err = svc.GetByID(resp.ID)
	assert.Equal(t, ErrUserNotFound, err)

	// Deleting again reports the account as unknown.
	assert.Equal(t, ErrUserNotFound, svc.Delete(resp.ID))
}
