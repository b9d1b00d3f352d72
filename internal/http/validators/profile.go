package validators

import (
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"

	"project-hub.com/project-hub/internal/constants"
	dto "project-hub.com/project-hub/internal/data_models"
	model "project-hub.com/project-hub/internal/models"
)

func ValidateCreateUserRequest(r *dto.CreateUserRequest) error {
	if r.Username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}
	if len(r.Username) > 150 {
		return echo.NewHTTPError(http.StatusBadRequest, "username must be at most 150 characters")
	}
	if r.Email != "" {
		if _, err := mail.ParseAddress(r.Email); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "email is invalid")
		}
	}
	return nil
}

// ProfileFromRequest validates the payload and maps it onto a profile.
func ProfileFromRequest(r *dto.ProfileRequest) (*model.Profile, error) {
	profile := &model.Profile{
		Country:        r.Country,
		Phone:          r.Phone,
		Language:       r.Language,
		GoogleEmail:    r.GoogleEmail,
		GoogleName:     r.GoogleName,
		GithubEmail:    r.GithubEmail,
		GithubName:     r.GithubName,
		FacebookEmail:  r.FacebookEmail,
		FacebookName:   r.FacebookName,
		ProfilePicture: r.ProfilePicture,
	}

	if r.Gender != nil && *r.Gender != "" {
		g := constants.Gender(*r.Gender)
		if !g.IsValid() {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "gender must be Male or Female")
		}
		profile.Gender = &g
	}

	if r.Phone != nil && len(*r.Phone) > 15 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "phone must be at most 15 characters")
	}

	for field, email := range map[string]*string{
		"google_email":   r.GoogleEmail,
		"github_email":   r.GithubEmail,
		"facebook_email": r.FacebookEmail,
	} {
		if email == nil || *email == "" {
			continue
		}
		if _, err := mail.ParseAddress(*email); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, field+" is invalid")
		}
	}

	return profile, nil
}
