package careerbooster

import (
	"context"
	"errors"
	"fmt"

	"github.com/careerbooster/cb-cli/internal/session"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	loginPath    = "/api/auth/login"
	registerPath = "/api/auth/register"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for a session. Credentials are checked locally
// before anything is sent; a backend rejection surfaces the server message.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Session, error) {
	payload := loginRequest{Email: email, Password: password}
	if err := checkInput(payload); err != nil {
		return nil, err
	}

	sess := &session.Session{}
	if err := c.postJSON(ctx, loginPath, payload, sess); err != nil {
		return nil, authFailure("login", err)
	}

	c.logger.Debug("logged in", zap.String("email", sess.Email))

	return sess, nil
}

// Register creates an account and returns the session the backend issues for
// it. Same contract as Login, different endpoint.
func (c *Client) Register(ctx context.Context, name, email, password string) (*session.Session, error) {
	payload := registerRequest{Name: name, Email: email, Password: password}
	if err := checkInput(payload); err != nil {
		return nil, err
	}

	sess := &session.Session{}
	if err := c.postJSON(ctx, registerPath, payload, sess); err != nil {
		return nil, authFailure("registration", err)
	}

	c.logger.Debug("registered", zap.String("email", sess.Email))

	return sess, nil
}

// checkInput converts validator failures into the ValidationError kind.
func checkInput(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}

	return &ValidationError{Fields: fields}
}

// authFailure keeps the taxonomy intact but lifts the backend message out of
// a generic server error so the user sees "login failed: <reason>".
func authFailure(op string, err error) error {
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		if msg := serverMessage([]byte(srvErr.Body)); msg != "" {
			return fmt.Errorf("%s failed: %s", op, msg)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
