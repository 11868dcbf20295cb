package context

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestIDDefaultsToUnknown(t *testing.T) {
	assert.Equal(t, "unknown", GetRequestID(context.Background()))
	assert.Equal(t, "unknown", GetRequestID(WithRequestID(context.Background(), "")))
	assert.Equal(t, "abc", GetRequestID(WithRequestID(context.Background(), "abc")))
}

func TestFromFiberCtxKeepsUserContextValues(t *testing.T) {
	type tenantKey struct{}

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.SetUserContext(context.WithValue(context.Background(), tenantKey{}, "monitoreo"))
		c.Locals("X-Request-ID", "req-9")

		ctx := FromFiberCtx(c)
		tenant, _ := ctx.Value(tenantKey{}).(string)
		return c.SendString(tenant + "/" + GetRequestID(ctx))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "monitoreo/req-9", string(body))
}

func TestFromFiberCtx(t *testing.T) {
	app := fiber.New()
	app.Get("/locals", func(c *fiber.Ctx) error {
		c.Locals("X-Request-ID", "from-locals")
		return c.SendString(GetRequestID(FromFiberCtx(c)))
	})
	app.Get("/header", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(FromFiberCtx(c)))
	})

	cases := []struct {
		path   string
		header string
		want   string
	}{
		{path: "/locals", want: "from-locals"},
		{path: "/header", header: "from-header", want: "unknown"},
		{path: "/header", want: "unknown"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(fiber.MethodGet, tc.path, nil)
		if tc.header != "" {
			req.Header.Set("X-Request-ID", tc.header)
		}

		resp, err := app.Test(req)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(body), tc.path)
	}
}
