// Package client is the data layer the Dishcovery frontends use: an HTTP
// client for the API plus a locally persisted session holding the
// signed-in user and a wishlist id cache.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dishcovery/dishcovery/backend/internal/api"
	"github.com/dishcovery/dishcovery/backend/internal/models"
)

// APIError carries the server's status code and message payload.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client calls the Dishcovery REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken attaches a bearer token to subsequent requests. Only needed
// against servers running with auth enforcement on.
func (c *Client) SetToken(token string) {
	c.token = token
}

// SignInResult is the sign-in response payload.
type SignInResult struct {
	Message string          `json:"message"`
	UserID  string          `json:"userId"`
	User    api.UserSummary `json:"user"`
	Token   string          `json:"token"`
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	var resp struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/signup",
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	var resp SignInResult
	err := c.do(ctx, http.MethodPost, "/api/auth/signin",
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := c.do(ctx, http.MethodGet, "/api/recipes", nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *Client) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := c.do(ctx, http.MethodGet, "/api/recipes/"+id, nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *Client) CreateRecipe(ctx context.Context, req *api.CreateRecipeRequest) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := c.do(ctx, http.MethodPost, "/api/recipes", req, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *Client) Wishlist(ctx context.Context, userID string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := c.do(ctx, http.MethodGet, "/api/wishlist/"+userID, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *Client) AddToWishlist(ctx context.Context, userID, recipeID string) ([]string, error) {
	var resp struct {
		Message  string   `json:"message"`
		Wishlist []string `json:"wishlist"`
	}
	path := fmt.Sprintf("/api/wishlist/%s/add/%s", userID, recipeID)
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Wishlist, nil
}

func (c *Client) RemoveFromWishlist(ctx context.Context, userID, recipeID string) ([]string, error) {
	var resp struct {
		Message  string   `json:"message"`
		Wishlist []string `json:"wishlist"`
	}
	path := fmt.Sprintf("/api/wishlist/%s/remove/%s", userID, recipeID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Wishlist, nil
}

func (c *Client) CheckWishlist(ctx context.Context, userID, recipeID string) (bool, error) {
	var resp struct {
		IsInWishlist bool `json:"isInWishlist"`
	}
	path := fmt.Sprintf("/api/wishlist/%s/check/%s", userID, recipeID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return false, err
	}
	return resp.IsInWishlist, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
