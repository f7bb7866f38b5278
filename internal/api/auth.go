package api

import (
	"context"
	"net/http"
)

type LoginRq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRq struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for the bearer token used on mutations.
func (c *Client) Login(ctx context.Context, rq LoginRq) (string, error) {
	res := struct {
		Token string `json:"token"`
	}{}
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", "", rq, &res); err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", &Error{Op: "login", StatusCode: http.StatusOK, Message: "response did not include a token"}
	}
	return res.Token, nil
}

func (c *Client) Signup(ctx context.Context, rq SignupRq) error {
	return c.do(ctx, "signup", http.MethodPost, "/auth/signup", "", rq, nil)
}
