package middleware

import (
	"context"
	"errors"
	"log"
	"time"

	"profile-bot/internal/command"
	"profile-bot/pkg/cmd"
)

var ErrNoResponse = errors.New("command finished without a response")

// WithCommandLogger wraps a command to log its execution
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			start := time.Now()
			err := c.Run(ctx, inv)
			elapsed := time.Since(start).Round(time.Millisecond)

			who := "unknown"
			if slash, e := command.FromInvocation(inv); e == nil {
				if u := slash.User(); u != nil {
					who = u.Username + " (" + u.ID + ")"
				}
			}

			if err != nil {
				log.Printf("[ERR] /%s by %s failed after %v: %v", c.Name(), who, elapsed, err)
				return err
			}
			log.Printf("[INFO] /%s by %s handled in %v", c.Name(), who, elapsed)
			return nil
		})
	}
}

// WithResponseCheck fails the invocation when the command returned without
// responding, so the webhook never answers with an empty body.
func WithResponseCheck() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			if err := c.Run(ctx, inv); err != nil {
				return err
			}
			slash, err := command.FromInvocation(inv)
			if err != nil {
				return err
			}
			if slash.Response() == nil {
				return ErrNoResponse
			}
			return nil
		})
	}
}
