package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"catppuccin-api/internal/types"
)

// ProfileURLPrefix is stripped from a collaborator URL to get the username.
const ProfileURLPrefix = "https://github.com/"

// Username derives the lookup key of a collaborator from its profile URL.
func Username(collaborator types.Collaborator) (string, error) {
	username, ok := strings.CutPrefix(collaborator.URL, ProfileURLPrefix)
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("collaborator url %q does not start with %s", collaborator.URL, ProfileURLPrefix))
	}
	return username, nil
}
