package routes

import (
	"embed"

	"github.com/gofiber/fiber/v2"
	"github.com/kalibr456/Fullstack/internal/config"
)

//go:embed docs_static/openapi.json
var docsStaticFS embed.FS

const docsIndexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Sport Center API</title>
  <style>
    body { margin: 0 auto; max-width: 56rem; padding: 48px 20px; font-family: Georgia, serif; color: #132019; }
    h1 { margin: 0 0 12px; }
    p { color: #536258; line-height: 1.6; }
    a { color: #1f6f4a; font-weight: 600; }
    code { background: #0f172a; color: #e2e8f0; padding: 2px 6px; border-radius: 4px; }
  </style>
</head>
<body>
  <h1>Sport Center API</h1>
  <p>REST backend for sections, trainings, the training diary and the load advisor.</p>
  <p>The machine-readable contract lives at <a href="/docs/openapi.json">/docs/openapi.json</a>.</p>
  <p>Authenticated endpoints expect an <code>Authorization: Bearer &lt;token&gt;</code> header
     obtained from <code>POST /users/login</code>.</p>
</body>
</html>`

// registerDocsRoutes exposes the API reference in development only.
func registerDocsRoutes(app *fiber.App, cfg *config.Config) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	spec, err := docsStaticFS.ReadFile("docs_static/openapi.json")
	if err != nil {
		return err
	}

	app.Get("/docs", func(c *fiber.Ctx) error {
		c.Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'")
		c.Type("html", "utf-8")
		return c.SendString(docsIndexHTML)
	})

	app.Get("/docs/openapi.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.Send(spec)
	})

	return nil
}
