package apiclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/target/stylist-web/internal/domain/model"
	apperrors "github.com/target/stylist-web/internal/errors"
)

// ChatAPI groups the /api/chat endpoints of the styling assistant.
type ChatAPI struct{ c *Client }

// Chat returns the assistant endpoints.
func (c *Client) Chat() *ChatAPI { return &ChatAPI{c: c} }

func (a *ChatAPI) Send(ctx context.Context, in model.ChatRequest) (model.ChatReply, error) {
	var out model.ChatReply
	in.Message = strings.TrimSpace(in.Message)
	if in.Message == "" {
		return out, apperrors.ValidationField("message", "Message cannot be empty")
	}
	err := a.c.do(ctx, call{method: http.MethodPost, path: "/api/chat/send", body: in, out: &out})
	return out, err
}
