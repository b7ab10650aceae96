package core

import "catppuccin-api/internal/types"

func collaborator(username string) types.Collaborator {
	return types.Collaborator{Name: username, URL: ProfileURLPrefix + username}
}

func nativePort(name string, categories ...string) types.Port {
	upstreamed := true
	return types.Port{
		Name:               name,
		Categories:         categories,
		Upstreamed:         &upstreamed,
		Platform:           types.Multiple("linux", "macos"),
		Color:              "mauve",
		CurrentMaintainers: []types.Collaborator{collaborator("alice")},
	}
}

func sampleUserstyle(name string, categories ...string) types.Userstyle {
	return types.Userstyle{
		Name:               types.Single(name),
		Categories:         categories,
		Color:              "blue",
		Readme:             types.Readme{AppLink: types.Single("https://example.com/" + name)},
		CurrentMaintainers: []types.Collaborator{collaborator("bob")},
	}
}

func sampleCategories() []types.Category {
	return []types.Category{
		{Key: "terminal", Name: "Terminal", Description: "Terminal emulators", Emoji: "T"},
		{Key: "editor", Name: "Editor", Description: "Code editors", Emoji: "E"},
		{Key: "social", Name: "Social", Description: "Social networks", Emoji: "S"},
	}
}
