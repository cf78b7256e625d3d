package discordtest

import (
	"context"
	"sync"

	"github.com/connorkuehl/valrank/internal/discord"
)

type ResponseType int

const (
	Reply ResponseType = iota + 1
	Deferred
	Edit
)

type Response struct {
	InteractionID string
	Type          ResponseType
	Content       string
}

// ResponseRecorder replays a fixed set of interactions and records every
// response the bot sends back.
type ResponseRecorder struct {
	mu           sync.Mutex
	Responses    []Response
	interactions []discord.Interaction
}

func NewResponseRecorder(interactions []discord.Interaction) *ResponseRecorder {
	return &ResponseRecorder{interactions: interactions}
}

func (r *ResponseRecorder) Interactions() <-chan discord.Interaction {
	ch := make(chan discord.Interaction, len(r.interactions))
	for _, i := range r.interactions {
		ch <- i
	}
	close(ch)
	return ch
}

func (r *ResponseRecorder) Reply(ctx context.Context, i discord.Interaction, content string) error {
	r.record(Response{InteractionID: i.ID, Type: Reply, Content: content})
	return nil
}

func (r *ResponseRecorder) Defer(ctx context.Context, i discord.Interaction) error {
	r.record(Response{InteractionID: i.ID, Type: Deferred})
	return nil
}

func (r *ResponseRecorder) EditReply(ctx context.Context, i discord.Interaction, content string) error {
	r.record(Response{InteractionID: i.ID, Type: Edit, Content: content})
	return nil
}

// For returns the responses sent for one interaction, in order.
func (r *ResponseRecorder) For(interactionID string) []Response {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rsps []Response
	for _, rsp := range r.Responses {
		if rsp.InteractionID == interactionID {
			rsps = append(rsps, rsp)
		}
	}
	return rsps
}

func (r *ResponseRecorder) record(rsp Response) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Responses = append(r.Responses, rsp)
}
