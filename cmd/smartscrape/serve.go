package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/smartscrape/form"
	sshttp "github.com/fwojciec/smartscrape/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ttl := c.SessionTTL
	if ttl <= 0 {
		ttl = form.DefaultSessionTTL
	}

	store := form.NewStore(form.NewController(deps.Service, deps.Logger), ttl)
	go store.Run(deps.Ctx, sweepInterval(ttl))

	srv := sshttp.NewServer(store, deps.Logger)
	srv.Addr = c.Addr
	if err := srv.Open(); err != nil {
		return fmt.Errorf("listen on %s: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stdout, "Serving on %s\n", srv.URL())

	<-deps.Ctx.Done()
	return srv.Close()
}

// sweepInterval checks for idle sessions twice per TTL, at most once a second.
func sweepInterval(ttl time.Duration) time.Duration {
	return max(ttl/2, time.Second)
}
