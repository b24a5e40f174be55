package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"studyhub/config"
	"studyhub/database"
	"studyhub/models"
	"studyhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

// AuthService handles registration, login, token refresh and federated
// sign-in. All paths converge on InitializeUser so provisioning rules hold
// no matter how an account arrives.
type AuthService struct {
	*BaseService
	users *UserService
}

func NewAuthService() *AuthService {
	return &AuthService{
		BaseService: NewBaseService(),
		users:       NewUserService(),
	}
}

// NewAuthServiceWith builds a service over an explicit store, used by tests.
func NewAuthServiceWith(store database.Store) *AuthService {
	return &AuthService{
		BaseService: &BaseService{store: store},
		users:       NewUserServiceWith(store, nil),
	}
}

// Register provisions a password account. The confirmation must match and
// the email must be unused.
func (as *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, *utils.TokenPair, error) {
	if req.Password != req.ConfirmPassword {
		return nil, nil, fmt.Errorf("%w: passwords do not match", models.ErrValidation)
	}

	var existing models.User
	err := as.store.FindDocument(ctx, database.UsersCollection, bson.M{"email": req.Email}, &existing)
	if err == nil {
		return nil, nil, fmt.Errorf("%w: email already registered", models.ErrValidation)
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, nil, err
	}

	user, err := as.users.InitializeUser(ctx, uuid.NewString(), req.Email)
	if err != nil {
		return nil, nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}
	err = as.store.UpdateDocument(ctx, database.UsersCollection, user.ID, bson.M{
		"passwordHash": hash,
		"provider":     models.ProviderPassword,
		"updatedAt":    time.Now(),
	})
	if err != nil {
		return nil, nil, err
	}
	user.Provider = models.ProviderPassword

	tokens, err := utils.GenerateTokenPair(user.ID, user.Email, user.Username, user.Role)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Login verifies credentials and issues a token pair. Both an unknown email
// and a wrong password come back as ErrUnauthorized.
func (as *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, *utils.TokenPair, error) {
	var user models.User
	err := as.store.FindDocument(ctx, database.UsersCollection, bson.M{"email": req.Email}, &user)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
		}
		return nil, nil, err
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, nil, fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}

	tokens, err := utils.GenerateTokenPair(user.ID, user.Email, user.Username, user.Role)
	if err != nil {
		return nil, nil, err
	}
	user.PasswordHash = ""
	return &user, tokens, nil
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (as *AuthService) Refresh(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	claims, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
	}

	user, err := as.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: account no longer exists", models.ErrUnauthorized)
		}
		return nil, err
	}

	return utils.GenerateTokenPair(user.ID, user.Email, user.Username, user.Role)
}

// OAuthConfig returns the oauth2 configuration for a supported provider.
func (as *AuthService) OAuthConfig(provider string) (*oauth2.Config, error) {
	cfg := config.AppConfig
	if cfg == nil {
		cfg = config.LoadConfig()
	}
	redirect := cfg.OAuthRedirectBase + "/api/v1/auth/" + provider + "/callback"

	switch provider {
	case models.ProviderGoogle:
		return &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  redirect,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}, nil
	case models.ProviderGithub:
		return &oauth2.Config{
			ClientID:     cfg.GithubClientID,
			ClientSecret: cfg.GithubClientSecret,
			RedirectURL:  redirect,
			Scopes:       []string{"user:email"},
			Endpoint:     github.Endpoint,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", models.ErrValidation, provider)
	}
}

// OAuthRedirect builds the provider consent URL plus a state nonce the
// controller round-trips through a cookie.
func (as *AuthService) OAuthRedirect(provider string) (authURL, state string, err error) {
	oc, err := as.OAuthConfig(provider)
	if err != nil {
		return "", "", err
	}
	state, err = utils.GenerateSecureToken(16)
	if err != nil {
		return "", "", err
	}
	return oc.AuthCodeURL(state, oauth2.AccessTypeOnline), state, nil
}

// OAuthCallback exchanges the authorization code, resolves the provider
// account's email and signs the user in, provisioning a profile on first
// contact.
func (as *AuthService) OAuthCallback(ctx context.Context, provider, code string) (*models.User, *utils.TokenPair, error) {
	oc, err := as.OAuthConfig(provider)
	if err != nil {
		return nil, nil, err
	}

	token, err := oc.Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: code exchange failed: %v", models.ErrUnauthorized, err)
	}

	email, err := fetchProviderEmail(ctx, provider, oc, token)
	if err != nil {
		return nil, nil, err
	}

	var user models.User
	err = as.store.FindDocument(ctx, database.UsersCollection, bson.M{"email": email}, &user)
	if errors.Is(err, models.ErrNotFound) {
		created, err := as.users.InitializeUser(ctx, uuid.NewString(), email)
		if err != nil {
			return nil, nil, err
		}
		user = *created
	} else if err != nil {
		return nil, nil, err
	}

	err = as.store.UpdateDocument(ctx, database.UsersCollection, user.ID, bson.M{
		"provider":  provider,
		"updatedAt": time.Now(),
	})
	if err != nil {
		return nil, nil, err
	}
	user.Provider = provider
	user.PasswordHash = ""

	tokens, err := utils.GenerateTokenPair(user.ID, user.Email, user.Username, user.Role)
	if err != nil {
		return nil, nil, err
	}
	return &user, tokens, nil
}

// fetchProviderEmail asks the provider's API for the signed-in account's
// email address.
func fetchProviderEmail(ctx context.Context, provider string, oc *oauth2.Config, token *oauth2.Token) (string, error) {
	client := oc.Client(ctx, token)
	client.Timeout = 10 * time.Second

	switch provider {
	case models.ProviderGoogle:
		return fetchGoogleEmail(client)
	case models.ProviderGithub:
		return fetchGithubEmail(client)
	}
	return "", fmt.Errorf("%w: unsupported provider %q", models.ErrValidation, provider)
}

func fetchGoogleEmail(client *http.Client) (string, error) {
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return "", fmt.Errorf("%w: userinfo request failed: %v", models.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("%w: userinfo decode failed: %v", models.ErrBackendUnavailable, err)
	}
	if info.Email == "" {
		return "", fmt.Errorf("%w: provider returned no email", models.ErrUnauthorized)
	}
	return info.Email, nil
}

func fetchGithubEmail(client *http.Client) (string, error) {
	resp, err := client.Get("https://api.github.com/user")
	if err != nil {
		return "", fmt.Errorf("%w: user request failed: %v", models.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	var account struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return "", fmt.Errorf("%w: user decode failed: %v", models.ErrBackendUnavailable, err)
	}
	if account.Email != "" {
		return account.Email, nil
	}

	// Email hidden on the profile, fall back to the emails endpoint.
	resp, err = client.Get("https://api.github.com/user/emails")
	if err != nil {
		return "", fmt.Errorf("%w: emails request failed: %v", models.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	var emails []struct {
		Email   string `json:"email"`
		Primary bool   `json:"primary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		return "", fmt.Errorf("%w: emails decode failed: %v", models.ErrBackendUnavailable, err)
	}
	for _, e := range emails {
		if e.Primary {
			return e.Email, nil
		}
	}
	if len(emails) > 0 {
		return emails[0].Email, nil
	}
	return "", fmt.Errorf("%w: provider returned no email", models.ErrUnauthorized)
}
