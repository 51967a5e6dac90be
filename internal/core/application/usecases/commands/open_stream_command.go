package commands

import (
	"errors"

	"cardapio/internal/core/application/notify"
	"cardapio/internal/pkg/guard"
)

var (
	ErrOpenStreamCommandIsNotConstructed = errors.New(
		"OpenStreamCommand must be created via NewOpenStreamCommand constructor",
	)
)

// OpenStreamCommand asks for a live event stream for one audience.
type OpenStreamCommand struct { //nolint:recvcheck //using for validation
	audience notify.Audience

	guard guard.ConstructorGuard
}

func NewOpenStreamCommand(audience notify.Audience) (OpenStreamCommand, error) {
	parsed, err := notify.ParseAudience(string(audience))
	if err != nil {
		return OpenStreamCommand{}, err
	}

	return OpenStreamCommand{
		audience: parsed,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c OpenStreamCommand) Validate() error {
	return c.guard.Validate(ErrOpenStreamCommandIsNotConstructed)
}

func (c OpenStreamCommand) Audience() notify.Audience {
	return c.audience
}
