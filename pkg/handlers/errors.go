package handlers

import (
	"context"

	"role-explorer/pkg/logging"
	"role-explorer/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
	"github.com/samber/oops"
)

// APIError maps a domain error to a huma status error. INVALID_ARGUMENT becomes
// 400 and NOT_FOUND 404; anything else is logged and reported as 500 with msg.
func APIError(ctx context.Context, msg string, err error) error {
	switch {
	case err == nil:
		return nil
	case permissions.IsInvalidArgument(err):
		return huma.Error400BadRequest(publicMessage(err))
	case permissions.IsNotFound(err):
		return huma.Error404NotFound(publicMessage(err))
	}
	logging.LogError(ctx, nil, msg, err)
	return huma.Error500InternalServerError(msg)
}

func publicMessage(err error) string {
	if oopsErr, ok := oops.AsOops(err); ok {
		return oopsErr.Error()
	}
	return err.Error()
}
