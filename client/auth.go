package client

import (
	"context"
	"io"
	"net/http"

	"github.com/ezkit-shop/storefront/models"
	"github.com/ezkit-shop/storefront/utils"
)

// Login authenticates against the backend. On success the session cookie
// lands in the client's jar and every later call is credentialed with it.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, utils.ValidationError(msg, nil)
	}

	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Register creates an account and logs it in
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, utils.ValidationError(msg, nil)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, utils.ValidationError(msg, nil)
	}

	req := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Name: name, Email: email, Password: password}

	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout invalidates the server-side session
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// GetProfile fetches the logged-in user's profile
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies profile edits after local validation
func (c *Client) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	if errs := utils.ValidateProfileUpdate(update.Name, update.PhoneNumber, update.DateOfBirth, update.Password, update.ConfirmPassword); errs != nil {
		return nil, utils.ValidationError("Invalid profile", errs)
	}

	var user models.User
	if err := c.do(ctx, http.MethodPut, "/api/users/profile", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UploadProfilePicture uploads a picture as multipart form data
func (c *Client) UploadProfilePicture(ctx context.Context, filename string, file io.Reader) (*models.User, error) {
	var user models.User
	if err := c.doMultipart(ctx, http.MethodPost, "/api/users/profile/picture", "profilePicture", filename, file, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteAccount removes the logged-in user's account
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/users/delete", nil, nil)
}
