package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"catppuccin-api/internal/types"
)

const userstylePlatform = "agnostic"

// AdaptUserstyle maps a userstyle into the canonical Port shape. Userstyles
// are never upstreamed, are platform agnostic and link to the first app link
// of their readme.
func AdaptUserstyle(identifier string, userstyle types.Userstyle) (types.Port, error) {
	appLink, err := userstyle.Readme.AppLink.First()
	if err != nil {
		return types.Port{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("userstyle %s has no app link", identifier)).
			WithCause(err)
	}
	upstreamed := false
	return types.Port{
		Name:               userstyle.Name.AsSingle("/"),
		Categories:         userstyle.Categories,
		Upstreamed:         &upstreamed,
		Platform:           types.Single(userstylePlatform),
		URL:                appLink,
		Icon:               userstyle.Icon,
		Color:              userstyle.Color,
		CurrentMaintainers: userstyle.CurrentMaintainers,
		PastMaintainers:    userstyle.PastMaintainers,
		IsUserstyle:        true,
	}, nil
}
