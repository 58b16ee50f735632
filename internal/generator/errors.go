package generator

import (
	qerrors "github.com/samuel7776/monkeytype/core/errors"
)

var errNoSource = qerrors.NewValidation("source", "", "a document source is required")
