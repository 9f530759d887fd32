package session

import (
	"strings"

	"github.com/amaumene/moviehub/internal/constants"
	apperrors "github.com/amaumene/moviehub/internal/errors"
)

// CheckCredentials is the login gate. It accepts any pair where both fields
// are non-blank; nothing is verified against an authority.
func CheckCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return apperrors.NewValidationError(constants.MsgLoginRequired)
	}
	return nil
}
