package cmd

import (
	"context"
	"strings"
	"testing"
)

type stubCommand struct {
	name string
	ran  *[]string
}

func (s stubCommand) Name() string        { return s.name }
func (s stubCommand) Description() string { return "stub " + s.name }
func (s stubCommand) Run(ctx context.Context, inv *Invocation) error {
	*s.ran = append(*s.ran, s.name)
	return nil
}

func TestRegistryCaseInsensitive(t *testing.T) {
	var ran []string
	r := NewRegistry(stubCommand{name: "Info", ran: &ran}, stubCommand{name: "help", ran: &ran})

	for _, name := range []string{"info", "INFO", " Info "} {
		if r.Get(name) == nil {
			t.Errorf("expected %q to resolve", name)
		}
	}
	if r.Get("profile") != nil {
		t.Error("unexpected command for unknown name")
	}

	all := r.GetAll()
	if len(all) != 2 || all[0].Name() != "help" || all[1].Name() != "Info" {
		t.Errorf("unexpected order %v", all)
	}
}

func TestApplyOrderAndRoot(t *testing.T) {
	var ran []string
	base := stubCommand{name: "base", ran: &ran}

	tag := func(label string) Middleware {
		return func(c Command) Command {
			return Wrap(c, func(ctx context.Context, inv *Invocation) error {
				ran = append(ran, label)
				return c.Run(ctx, inv)
			})
		}
	}

	c := Apply(base, tag("inner"), tag("outer"))
	if err := c.Run(context.Background(), &Invocation{}); err != nil {
		t.Fatal(err)
	}

	if got := strings.Join(ran, ","); got != "outer,inner,base" {
		t.Errorf("unexpected run order %s", got)
	}
	if c.Name() != "base" || c.Description() != "stub base" {
		t.Errorf("wrapped command must keep identity, got %s", c.Name())
	}
	if _, ok := Root(c).(stubCommand); !ok {
		t.Errorf("Root returned %T", Root(c))
	}
}
