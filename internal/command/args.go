package command

import (
	"errors"
	"strings"

	"github.com/connorkuehl/valrank/internal/valrank"
)

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
)

// OptionRiotID is the name of the register command's only option.
const OptionRiotID = "riotid"

type RegisterArgs struct {
	PlayerID valrank.PlayerID
}

func (args *RegisterArgs) ParseArg(opts map[string]string) error {
	id, ok := opts[OptionRiotID]
	if !ok {
		return ErrMissingArgument
	}

	if strings.TrimSpace(id) == "" {
		return ErrMissingArgument
	}

	args.PlayerID = valrank.PlayerID(id)
	return nil
}

type RefreshArgs struct{}

func (args *RefreshArgs) ParseArg(opts map[string]string) error {
	if len(opts) > 0 {
		return ErrInvalidArgument
	}
	return nil
}
