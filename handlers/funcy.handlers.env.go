package handlers

import (
	"os"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-funcy"
)

// EnvHandler outputs environment variables.
//
// Usage:
//
//	<!$ env HOME>            -> value of $HOME, error if unset
//	<!$ env EDITOR vi>       -> value of $EDITOR, or "vi" if unset
//
// When an allow list is set, other variables are refused.
type EnvHandler struct {
	allow  map[string]struct{}
	lookup func(string) (string, bool)
}

// Env creates an EnvHandler. With no names every variable is readable.
func Env(allow ...string) *EnvHandler {
	h := &EnvHandler{lookup: os.LookupEnv}
	if len(allow) > 0 {
		h.allow = make(map[string]struct{}, len(allow))
		for _, name := range allow {
			h.allow[name] = struct{}{}
		}
	}
	return h
}

// Handle implements funcy.Handler.
func (h *EnvHandler) Handle(_, arg string) (string, error) {
	varName, fallback := funcy.SplitContent(arg)
	if varName == "" {
		return "", cuserr.NewValidationError(ErrCodeHandler, ErrMsgEnvNameMissing).
			WithMetadata(MetaKeyHandler, NameEnv)
	}

	if h.allow != nil {
		if _, ok := h.allow[varName]; !ok {
			return "", cuserr.NewValidationError(ErrCodeHandler, ErrMsgEnvVarDisallowed).
				WithMetadata(MetaKeyEnvVar, varName)
		}
	}

	if val, ok := h.lookup(varName); ok {
		return val, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", cuserr.NewNotFoundError(MetaKeyEnvVar, ErrMsgEnvVarNotSet).
		WithMetadata(MetaKeyEnvVar, varName)
}
