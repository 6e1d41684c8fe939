package games

import (
	"context"
	"encoding/json"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// CatalogPath is the only path the request adapter answers.
const CatalogPath = "/games.json"

// Response is a transport-neutral HTTP response.
type Response struct {
	Status  int
	Headers map[string]string
	Body    []byte
}

// Adapter translates an inbound path and query string into a catalog read.
type Adapter struct {
	lister Lister
	logger *zap.Logger
}

// NewAdapter creates a request adapter over lister.
func NewAdapter(lister Lister, logger *zap.Logger) *Adapter {
	return &Adapter{lister: lister, logger: logger}
}

// Respond answers one request. The catalog path always yields 200: a failed
// read is reported through the "error" key of the JSON body, which existing
// clients parse. Every other path yields 404 "Not Found".
func (a *Adapter) Respond(ctx context.Context, path, rawQuery string) Response {
	if path != CatalogPath {
		return Response{
			Status:  404,
			Headers: map[string]string{"Content-Type": "text/plain"},
			Body:    []byte("Not Found"),
		}
	}

	result := a.lister.List(ctx, searchTerm(rawQuery))
	if result.Failed() {
		a.logger.Warn("Serving catalog error", zap.String("kind", string(result.Kind)))
	}

	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		a.logger.Error("Failed to encode catalog", zap.Error(err))
		return Response{
			Status:  500,
			Headers: map[string]string{"Content-Type": "text/plain"},
			Body:    []byte("Internal Server Error"),
		}
	}

	return Response{
		Status:  200,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	}
}

// searchTerm returns the first non-empty q value. Pairs are split on '&'
// only and invalid percent escapes are kept as written.
func searchTerm(rawQuery string) string {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)

	args.Parse(rawQuery)
	for _, v := range args.PeekMulti("q") {
		if len(v) > 0 {
			return string(v)
		}
	}
	return ""
}
