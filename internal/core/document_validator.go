package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"catppuccin-api/internal/types"
)

// DocumentValidator rejects source documents the merge engine cannot trust.
// Every failure is a startup fault; nothing here is recoverable per request.
type DocumentValidator struct{}

func NewDocumentValidator() DocumentValidator {
	return DocumentValidator{}
}

func (v DocumentValidator) ValidatePorts(ctx context.Context, doc types.PortsDocument) error {
	if len(doc.Ports) == 0 && len(doc.Categories) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("ports document has neither ports nor categories")
	}
	if err := validateCollaborators("ports document", doc.Collaborators); err != nil {
		return err
	}
	if _, err := CategoryTable(doc.Categories); err != nil {
		return err
	}
	for _, entry := range doc.Ports {
		if err := validatePort(entry.Identifier, entry.Value); err != nil {
			return err
		}
	}
	for i, showcase := range doc.Showcases {
		if strings.TrimSpace(showcase.Title) == "" || strings.TrimSpace(showcase.Link) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("showcase %d missing title or link", i))
		}
	}
	log.Ctx(ctx).Debug().Int("ports", len(doc.Ports)).Msg("ports document validated")
	return nil
}

func (v DocumentValidator) ValidateUserstyles(ctx context.Context, doc types.UserstylesDocument) error {
	if err := validateCollaborators("userstyles document", doc.Collaborators); err != nil {
		return err
	}
	for _, entry := range doc.Userstyles {
		if err := validateUserstyle(entry.Identifier, entry.Value); err != nil {
			return err
		}
	}
	log.Ctx(ctx).Debug().Int("userstyles", len(doc.Userstyles)).Msg("userstyles document validated")
	return nil
}

func validatePort(identifier string, port types.Port) error {
	if strings.TrimSpace(identifier) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("port identifier must not be empty")
	}
	if strings.TrimSpace(port.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("port %s missing name", identifier))
	}
	for _, link := range port.Links {
		if strings.TrimSpace(link.URL) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("port %s has link %q without url", identifier, link.Name))
		}
	}
	if err := validateMaintainers("port "+identifier, port.CurrentMaintainers, port.PastMaintainers); err != nil {
		return err
	}
	return nil
}

func validateUserstyle(identifier string, userstyle types.Userstyle) error {
	if strings.TrimSpace(identifier) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("userstyle identifier must not be empty")
	}
	if strings.TrimSpace(userstyle.Name.AsSingle("/")) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("userstyle %s missing name", identifier))
	}
	if _, err := userstyle.Readme.AppLink.First(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("userstyle %s has no app link", identifier)).
			WithCause(err)
	}
	return validateMaintainers("userstyle "+identifier, userstyle.CurrentMaintainers, userstyle.PastMaintainers)
}

func validateCollaborators(owner string, collaborators []types.Collaborator) error {
	for _, collaborator := range collaborators {
		if _, err := Username(collaborator); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("%s: invalid collaborator", owner)).
				WithCause(err)
		}
	}
	return nil
}

func validateMaintainers(owner string, current []types.Collaborator, past []types.Collaborator) error {
	if err := validateCollaborators(owner, current); err != nil {
		return err
	}
	return validateCollaborators(owner, past)
}
