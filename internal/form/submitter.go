package form

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/client"
)

// HTTPSubmitter posts the fields as JSON to the contact endpoint.
type HTTPSubmitter struct {
	endpoint string
	language string
	client   *client.Client
}

func NewHTTPSubmitter(endpoint, language string) *HTTPSubmitter {
	return &HTTPSubmitter{
		endpoint: endpoint,
		language: language,
		client:   client.New(),
	}
}

// Submit makes one POST. Any HTTP answer is a Response, whatever its status;
// only a failure to get one is an error. There is no timeout beyond ctx.
func (s *HTTPSubmitter) Submit(ctx context.Context, req Fields) (Response, error) {
	resp, err := s.client.Post(s.endpoint, client.Config{
		Ctx: ctx,
		Header: map[string]string{
			fiber.HeaderAccept:         fiber.MIMEApplicationJSON,
			fiber.HeaderAcceptLanguage: s.language,
		},
		Body: req,
	})
	if err != nil {
		return Response{}, fmt.Errorf("post %s: %w", s.endpoint, err)
	}
	defer resp.Close()

	out := Response{StatusCode: resp.StatusCode()}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	// Proxies answer with HTML error pages; those keep Success false.
	if err := resp.JSON(&body); err == nil {
		out.Success = body.Success
		out.Message = body.Message
	}
	return out, nil
}
