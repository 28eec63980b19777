package connect

import (
	"encoding/json"
)

type sessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string `json:"token"`
}

// Authenticate creates a new session and stores the token.
func (a *Api) Authenticate() error {
	if a.credentials.Empty() {
		return &AuthError{Message: "missing credentials: email or password is not set"}
	}

	res, err := a.http.R().
		SetBody(sessionRequest{Email: a.credentials.Email, Password: a.credentials.Password}).
		Post("api/sessions")
	if err != nil {
		return &AuthError{Message: "cannot create session: " + err.Error()}
	}
	if !res.IsSuccess() {
		return &AuthError{
			Message:      "cannot create session",
			StatusCode:   res.StatusCode(),
			ResponseBody: res.String(),
		}
	}

	session := sessionResponse{}
	if err := json.Unmarshal(res.Body(), &session); err != nil {
		return &AuthError{Message: "cannot decode session response", ResponseBody: res.String()}
	}
	if session.Token == "" {
		return &AuthError{Message: "auth token not found in session response", ResponseBody: res.String()}
	}

	a.token = session.Token
	a.lastAuth = a.clock.Now()
	a.logger.Debugf("Session created.")
	return nil
}
