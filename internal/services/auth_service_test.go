package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/workreward/work-reward-api/internal/models"
	"github.com/workreward/work-reward-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
}

// SetupTest runs before each test
func (suite *AuthServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = newTestDB()
	suite.Require().NoError(err)

	suite.service = NewAuthService(
		repository.NewUserRepository(suite.db),
		repository.NewManagerCodeRepository(suite.db),
	)
}

// TearDownTest runs after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AuthServiceTestSuite) createManagerCode(code string) *models.ManagerCode {
	mc := &models.ManagerCode{Code: code}
	suite.Require().NoError(suite.db.Create(mc).Error)
	return mc
}

// TestSignup_Performer tests a plain signup without a manager code
func (suite *AuthServiceTestSuite) TestSignup_Performer() {
	user, err := suite.service.Signup(SignupInput{
		Email:     "  New.User@Example.COM ",
		Password:  "supersecret",
		FirstName: "Ivan",
		LastName:  "Petrov",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "new.user@example.com", user.Email)
	assert.Equal(suite.T(), models.RolePerformer, user.Role)
	assert.True(suite.T(), user.IsActive)

	// The stored hash verifies against the original password
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret"))
	assert.NoError(suite.T(), err)
}

// TestSignup_WithManagerCode tests that a valid code grants the manager
// role and is consumed
func (suite *AuthServiceTestSuite) TestSignup_WithManagerCode() {
	suite.createManagerCode("ABCD-1234-EF56")

	user, err := suite.service.Signup(SignupInput{
		Email:       "boss@example.com",
		Password:    "supersecret",
		FirstName:   "Anna",
		LastName:    "Ivanova",
		ManagerCode: "ABCD-1234-EF56",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.RoleManager, user.Role)

	var code models.ManagerCode
	suite.Require().NoError(suite.db.Where("code = ?", "ABCD-1234-EF56").First(&code).Error)
	assert.True(suite.T(), code.IsUsed)
	assert.NotNil(suite.T(), code.UsedAt)
}

// TestSignup_InvalidManagerCode tests signup with a nonexistent code
func (suite *AuthServiceTestSuite) TestSignup_InvalidManagerCode() {
	_, err := suite.service.Signup(SignupInput{
		Email:       "boss@example.com",
		Password:    "supersecret",
		FirstName:   "Anna",
		LastName:    "Ivanova",
		ManagerCode: "NO-SUCH-CODE",
	})

	assert.ErrorIs(suite.T(), err, ErrInvalidManagerCode)

	// No account is created when the code is rejected
	var count int64
	suite.Require().NoError(suite.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

// TestSignup_UsedManagerCode tests that a code works exactly once
func (suite *AuthServiceTestSuite) TestSignup_UsedManagerCode() {
	suite.createManagerCode("ABCD-1234-EF56")

	_, err := suite.service.Signup(SignupInput{
		Email:       "first@example.com",
		Password:    "supersecret",
		FirstName:   "Anna",
		LastName:    "Ivanova",
		ManagerCode: "ABCD-1234-EF56",
	})
	suite.Require().NoError(err)

	_, err = suite.service.Signup(SignupInput{
		Email:       "second@example.com",
		Password:    "supersecret",
		FirstName:   "Boris",
		LastName:    "Sidorov",
		ManagerCode: "ABCD-1234-EF56",
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidManagerCode)
}

// TestSignup_DuplicateEmail tests the unique email constraint
func (suite *AuthServiceTestSuite) TestSignup_DuplicateEmail() {
	input := SignupInput{
		Email:     "user@example.com",
		Password:  "supersecret",
		FirstName: "Ivan",
		LastName:  "Petrov",
	}

	_, err := suite.service.Signup(input)
	suite.Require().NoError(err)

	_, err = suite.service.Signup(input)
	assert.ErrorIs(suite.T(), err, ErrEmailTaken)
	assert.ErrorIs(suite.T(), err, ErrConflict)
}

// TestSignup_Validation tests input validation
func (suite *AuthServiceTestSuite) TestSignup_Validation() {
	_, err := suite.service.Signup(SignupInput{
		Email:     "",
		Password:  "supersecret",
		FirstName: "Ivan",
		LastName:  "Petrov",
	})
	assert.ErrorIs(suite.T(), err, ErrEmailRequired)

	_, err = suite.service.Signup(SignupInput{
		Email:     "user@example.com",
		Password:  "short",
		FirstName: "Ivan",
		LastName:  "Petrov",
	})
	assert.ErrorIs(suite.T(), err, ErrPasswordTooShort)

	_, err = suite.service.Signup(SignupInput{
		Email:    "user@example.com",
		Password: "supersecret",
		LastName: "Petrov",
	})
	assert.ErrorIs(suite.T(), err, ErrNameRequired)
}

// TestLogin tests authentication
func (suite *AuthServiceTestSuite) TestLogin() {
	_, err := suite.service.Signup(SignupInput{
		Email:     "user@example.com",
		Password:  "supersecret",
		FirstName: "Ivan",
		LastName:  "Petrov",
	})
	suite.Require().NoError(err)

	user, err := suite.service.Login(LoginInput{Email: "User@Example.com", Password: "supersecret"})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "user@example.com", user.Email)

	_, err = suite.service.Login(LoginInput{Email: "user@example.com", Password: "wrongpassword"})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)

	_, err = suite.service.Login(LoginInput{Email: "nobody@example.com", Password: "supersecret"})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

// TestLogin_InactiveUser tests that deactivated accounts cannot log in
func (suite *AuthServiceTestSuite) TestLogin_InactiveUser() {
	user, err := suite.service.Signup(SignupInput{
		Email:     "user@example.com",
		Password:  "supersecret",
		FirstName: "Ivan",
		LastName:  "Petrov",
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	_, err = suite.service.Login(LoginInput{Email: "user@example.com", Password: "supersecret"})
	assert.ErrorIs(suite.T(), err, ErrUserInactive)
}

// TestGenerateManagerCodes tests manager code minting
func (suite *AuthServiceTestSuite) TestGenerateManagerCodes() {
	manager := &models.User{
		Email:        "manager@example.com",
		PasswordHash: "hashedpassword",
		FirstName:    "Anna",
		LastName:     "Ivanova",
		Role:         models.RoleManager,
		IsActive:     true,
	}
	suite.Require().NoError(suite.db.Create(manager).Error)

	codes, err := suite.service.GenerateManagerCodes(manager.ID, 3)
	suite.Require().NoError(err)
	suite.Require().Len(codes, 3)

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(suite.T(), code.Code)
		assert.False(suite.T(), code.IsUsed)
		assert.False(suite.T(), seen[code.Code], "codes must be unique")
		seen[code.Code] = true
	}
}

// TestGenerateManagerCodes_PerformerForbidden tests that performers
// cannot mint codes
func (suite *AuthServiceTestSuite) TestGenerateManagerCodes_PerformerForbidden() {
	performer := &models.User{
		Email:        "performer@example.com",
		PasswordHash: "hashedpassword",
		FirstName:    "Ivan",
		LastName:     "Petrov",
		Role:         models.RolePerformer,
		IsActive:     true,
	}
	suite.Require().NoError(suite.db.Create(performer).Error)

	_, err := suite.service.GenerateManagerCodes(performer.ID, 1)

	assert.ErrorIs(suite.T(), err, ErrOnlyManagers)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
